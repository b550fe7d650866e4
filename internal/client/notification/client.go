package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/s21platform/messenger-service/internal/config"
	"github.com/s21platform/messenger-service/internal/model"
)

const queueSize = 64

type Client struct {
	authURL    string
	notifyURL  string
	username   string
	password   string
	enabled    bool
	httpClient *http.Client

	queue chan []model.PushNotification
	done  chan struct{}
}

func New(cfg *config.Config) *Client {
	c := &Client{
		authURL:   cfg.Notification.AuthURL,
		notifyURL: cfg.Notification.NotifyURL,
		username:  cfg.Notification.Username,
		password:  cfg.Notification.Password,
		enabled:   cfg.Notification.Enabled,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Notification.TimeoutS) * time.Second,
		},
		queue: make(chan []model.PushNotification, queueSize),
		done:  make(chan struct{}),
	}

	go c.run()

	return c
}

func (c *Client) Close() {
	close(c.queue)
	<-c.done
	c.httpClient.CloseIdleConnections()
}

// SendPushNotifications enqueues a best-effort push batch. It never blocks
// the caller: when the feature flag is off, the batch is empty, or the queue
// is full, the batch is dropped.
func (c *Client) SendPushNotifications(batch []model.PushNotification) {
	if !c.enabled || len(batch) == 0 {
		return
	}

	select {
	case c.queue <- batch:
	default:
	}
}

func (c *Client) run() {
	defer close(c.done)
	for batch := range c.queue {
		if err := c.deliver(context.Background(), batch); err != nil {
			// best effort, the parent request already succeeded
			continue
		}
	}
}

func (c *Client) deliver(ctx context.Context, batch []model.PushNotification) error {
	token, err := c.login(ctx)
	if err != nil {
		return fmt.Errorf("failed to authenticate against auth service: %w", err)
	}

	payload := model.PushNotificationBatch{PushData: batch}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.notifyURL+"/notifications/sendPushNotifications", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return nil
}

func (c *Client) login(ctx context.Context) (string, error) {
	creds := map[string]string{
		"username": c.username,
		"password": c.password,
	}

	jsonData, err := json.Marshal(creds)
	if err != nil {
		return "", fmt.Errorf("failed to marshal credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL+"/auth/login", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var response struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if response.Token == "" {
		return "", fmt.Errorf("auth service returned an empty token")
	}

	return response.Token, nil
}

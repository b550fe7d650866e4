package model

const NewMessageNotificationType = "New Message"

type PushNotification struct {
	Username         string               `json:"username"`
	NotificationType string               `json:"notificationType"`
	Data             PushNotificationData `json:"data"`
}

type PushNotificationData struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type PushNotificationBatch struct {
	PushData []PushNotification `json:"pushData"`
}

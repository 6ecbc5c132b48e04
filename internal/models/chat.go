package models

import "time"

// ChatMessage is the inbound/outbound "chat message" realtime payload
type ChatMessage struct {
	Room         string `json:"room"`
	StudentEmail string `json:"studentEmail"`
	TeacherEmail string `json:"teacherEmail"`
	Sender       string `json:"sender"`
	Message      string `json:"message"`
}

// ChatHistoryEntry is one entry of GET /chat-messages
type ChatHistoryEntry struct {
	Sender    string    `json:"sender"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

package models

import "time"

// HistoryRecord is one persisted conversation turn on the server.
type HistoryRecord struct {
	ID        int64            `json:"id" bson:"-"`
	UserID    int64            `json:"user_id" bson:"user_id"`
	Turn      ConversationTurn `json:"turn" bson:"turn"`
	CreatedAt time.Time        `json:"created_at" bson:"created_at"`
}

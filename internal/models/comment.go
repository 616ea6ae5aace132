package models

import "time"

// MinCommentLength is the minimum trimmed content length.
const MinCommentLength = 10

// Comment is an immutable remark on an idea. UserName is denormalized at
// comment time and not updated if the author later renames. Likes is kept
// for schema compatibility; no operation mutates it.
type Comment struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	IdeaID    string    `gorm:"type:uuid;index;not null" json:"-"`
	UserID    string    `gorm:"type:uuid;not null" json:"user_id"`
	UserName  string    `json:"user_name"`
	Content   string    `gorm:"not null" json:"content"`
	Likes     int       `gorm:"default:0" json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

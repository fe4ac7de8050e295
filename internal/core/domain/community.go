package domain

import "time"

// Group is a public community space organised around topics.
type Group struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Topics      []string  `json:"topics" bson:"topics"`
	IsPublic    bool      `json:"is_public" bson:"is_public"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// Post is a member message inside a group. UserName is denormalised so lists
// render without a user lookup per row.
type Post struct {
	ID        string         `json:"id" bson:"_id,omitempty"`
	GroupID   string         `json:"group_id" bson:"group_id"`
	UserID    string         `json:"user_id" bson:"user_id"`
	UserName  string         `json:"user_name" bson:"user_name"`
	Content   string         `json:"content" bson:"content"`
	Reactions map[string]int `json:"reactions" bson:"reactions"`
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
}

// Comment is a reply to a post.
type Comment struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	PostID    string    `json:"post_id" bson:"post_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	UserName  string    `json:"user_name" bson:"user_name"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

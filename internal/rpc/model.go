package rpc

import (
	"time"

	"github.com/daniilsolovey/discussion-board/internal/board"
)

type ArticleFilter struct {
	//sortBy=created_at sort column
	SortBy string `json:"sortBy,omitempty"`
	//order=desc sort direction, asc or desc
	Order string `json:"order,omitempty"`
	//topic optional topic slug filter
	Topic *string `json:"topic,omitempty"`
}

func (f ArticleFilter) ToModel() board.ArticleFilter {
	return board.ArticleFilter{
		SortBy: f.SortBy,
		Order:  f.Order,
		Topic:  f.Topic,
	}
}

type CommentInput struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}

func (c CommentInput) ToModel() board.CommentInput {
	return board.CommentInput{
		Username: c.Username,
		Body:     c.Body,
	}
}

type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type User struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

type ArticleSummary struct {
	ArticleID     int       `json:"articleId"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"createdAt"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"articleImgUrl"`
	CommentCount  int       `json:"commentCount"`
}

type Article struct {
	ArticleID     int       `json:"articleId"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	Body          string    `json:"body"`
	CreatedAt     time.Time `json:"createdAt"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"articleImgUrl"`
	CommentCount  *int      `json:"commentCount,omitempty"`
}

type Comment struct {
	CommentID int       `json:"commentId"`
	ArticleID int       `json:"articleId"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"createdAt"`
}

package rest

import "time"

type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type User struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// ArticleSummary is an article listing row, without body.
type ArticleSummary struct {
	ArticleID     int       `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}

type Article struct {
	ArticleID     int       `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	Body          string    `json:"body"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
}

type ArticleDetail struct {
	Article
	CommentCount int `json:"comment_count"`
}

type Comment struct {
	CommentID int       `json:"comment_id"`
	ArticleID int       `json:"article_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatedComment is the reply to a comment creation.
type CreatedComment struct {
	CommentID int    `json:"comment_id"`
	Username  string `json:"username"`
	Body      string `json:"body"`
}

type TopicsResponse struct {
	Topics []Topic `json:"topics"`
}

type ArticlesResponse struct {
	Articles []ArticleSummary `json:"articles"`
}

type ArticleResponse struct {
	Article ArticleDetail `json:"article"`
}

type ErrorResponse struct {
	Msg string `json:"msg"`
}

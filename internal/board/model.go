package board

import (
	"github.com/daniilsolovey/discussion-board/internal/db"
)

type Topic struct {
	db.Topic
}

type User struct {
	db.User
}

type Article struct {
	db.Article
}

// ArticleSummary is a listing row: an article without its body plus its comment count.
type ArticleSummary struct {
	db.ArticleWithCommentCount
}

// ArticleDetail is a full article plus its comment count.
type ArticleDetail struct {
	db.ArticleDetail
}

type Comment struct {
	db.Comment
}

// ArticleFilter holds the raw, unchecked listing parameters.
type ArticleFilter struct {
	SortBy string
	Order  string
	Topic  *string
}

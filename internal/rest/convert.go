package rest

import "github.com/daniilsolovey/discussion-board/internal/board"

func NewTopic(t board.Topic) Topic {
	return Topic{
		Slug:        t.Slug,
		Description: t.Description,
	}
}

func NewUser(u board.User) User {
	return User{
		Username:  u.Username,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
	}
}

func NewArticleSummary(a board.ArticleSummary) ArticleSummary {
	return ArticleSummary{
		ArticleID:     a.ID,
		Title:         a.Title,
		Topic:         a.Topic,
		Author:        a.Author,
		CreatedAt:     a.CreatedAt,
		Votes:         a.Votes,
		ArticleImgURL: a.ArticleImgURL,
		CommentCount:  a.CommentCount,
	}
}

func NewArticle(a board.Article) Article {
	return Article{
		ArticleID:     a.ID,
		Title:         a.Title,
		Topic:         a.Topic,
		Author:        a.Author,
		Body:          a.Body,
		CreatedAt:     a.CreatedAt,
		Votes:         a.Votes,
		ArticleImgURL: a.ArticleImgURL,
	}
}

func NewArticleDetail(a board.ArticleDetail) ArticleDetail {
	return ArticleDetail{
		Article: Article{
			ArticleID:     a.ID,
			Title:         a.Title,
			Topic:         a.Topic,
			Author:        a.Author,
			Body:          a.Body,
			CreatedAt:     a.CreatedAt,
			Votes:         a.Votes,
			ArticleImgURL: a.ArticleImgURL,
		},
		CommentCount: a.CommentCount,
	}
}

func NewComment(c board.Comment) Comment {
	return Comment{
		CommentID: c.ID,
		ArticleID: c.ArticleID,
		Author:    c.Author,
		Body:      c.Body,
		Votes:     c.Votes,
		CreatedAt: c.CreatedAt,
	}
}

func NewCreatedComment(c board.Comment) CreatedComment {
	return CreatedComment{
		CommentID: c.ID,
		Username:  c.Author,
		Body:      c.Body,
	}
}

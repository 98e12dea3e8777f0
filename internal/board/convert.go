package board

import "github.com/daniilsolovey/discussion-board/internal/db"

// Map converts every element of list with converter.
func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewTopic(t db.Topic) Topic {
	return Topic{Topic: t}
}

func NewTopics(list []db.Topic) []Topic {
	return Map(list, NewTopic)
}

func NewUser(u db.User) User {
	return User{User: u}
}

func NewUsers(list []db.User) []User {
	return Map(list, NewUser)
}

func NewArticle(a db.Article) Article {
	return Article{Article: a}
}

func NewArticleSummary(a db.ArticleWithCommentCount) ArticleSummary {
	return ArticleSummary{ArticleWithCommentCount: a}
}

func NewArticleSummaries(list []db.ArticleWithCommentCount) []ArticleSummary {
	return Map(list, NewArticleSummary)
}

func NewArticleDetail(a db.ArticleDetail) ArticleDetail {
	return ArticleDetail{ArticleDetail: a}
}

func NewComment(c db.Comment) Comment {
	return Comment{Comment: c}
}

func NewComments(list []db.Comment) []Comment {
	return Map(list, NewComment)
}

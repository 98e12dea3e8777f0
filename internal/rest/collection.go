package rest

import "github.com/daniilsolovey/discussion-board/internal/board"

func NewTopics(list []board.Topic) []Topic {
	return board.Map(list, NewTopic)
}

func NewUsers(list []board.User) []User {
	return board.Map(list, NewUser)
}

func NewArticleSummaries(list []board.ArticleSummary) []ArticleSummary {
	return board.Map(list, NewArticleSummary)
}

func NewComments(list []board.Comment) []Comment {
	return board.Map(list, NewComment)
}

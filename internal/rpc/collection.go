package rpc

import "github.com/daniilsolovey/discussion-board/internal/board"

type (
	Topics           []Topic
	Users            []User
	ArticleSummaries []ArticleSummary
	Comments         []Comment
)

func NewTopics(list []board.Topic) Topics {
	return board.Map(list, NewTopic)
}

func NewUsers(list []board.User) Users {
	return board.Map(list, NewUser)
}

func NewArticleSummaries(list []board.ArticleSummary) ArticleSummaries {
	return board.Map(list, NewArticleSummary)
}

func NewComments(list []board.Comment) Comments {
	return board.Map(list, NewComment)
}

package rpc

import (
	"context"
	"errors"

	"github.com/daniilsolovey/discussion-board/internal/board"
	"github.com/vmkteam/zenrpc/v2"
)

//go:generate zenrpc

var (
	ErrBadRequest = zenrpc.NewStringError(400, "bad request")
	ErrNotFound   = zenrpc.NewStringError(404, "not found")
)

// BoardService provides RPC methods for articles, comments, topics and users.
type BoardService struct {
	zenrpc.Service
	manager *board.Manager
}

func NewBoardService(manager *board.Manager) *BoardService {
	return &BoardService{manager: manager}
}

// newError converts board error kinds to RPC errors. Other errors pass through as internal.
func newError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, board.ErrInvalidInput):
		return ErrBadRequest
	case errors.Is(err, board.ErrNotFound):
		return ErrNotFound
	}
	return err
}

// Topics returns all topics ordered by slug.
//
//zenrpc:return list of topics
//zenrpc:500 internal server error
func (s *BoardService) Topics(ctx context.Context) (Topics, error) {
	topics, err := s.manager.Topics(ctx)
	if err != nil {
		return nil, newError(err)
	}

	return NewTopics(topics), nil
}

// Users returns all users ordered by username.
//
//zenrpc:return list of users
//zenrpc:500 internal server error
func (s *BoardService) Users(ctx context.Context) (Users, error) {
	users, err := s.manager.Users(ctx)
	if err != nil {
		return nil, newError(err)
	}

	return NewUsers(users), nil
}

// Articles lists articles without body, each with its comment count.
//
//zenrpc:filter sort column, direction and optional topic
//zenrpc:return list of article summaries
//zenrpc:404 unknown sort column or order, or no articles for topic
//zenrpc:500 internal server error
func (s *BoardService) Articles(ctx context.Context, filter ArticleFilter) (ArticleSummaries, error) {
	articles, err := s.manager.Articles(ctx, filter.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	return NewArticleSummaries(articles), nil
}

// ArticleByID returns a single article with body and comment count.
//
//zenrpc:articleId article numeric ID
//zenrpc:return article with comment count
//zenrpc:400 id must be positive
//zenrpc:404 article not found
//zenrpc:500 internal server error
func (s *BoardService) ArticleByID(ctx context.Context, articleId int) (*Article, error) {
	article, err := s.manager.ArticleByID(ctx, articleId)
	if err != nil {
		return nil, newError(err)
	}

	result := NewArticleDetail(*article)
	return &result, nil
}

// ArticleComments returns the comments of an article, newest first.
//
//zenrpc:articleId article numeric ID
//zenrpc:return list of comments
//zenrpc:400 id must be positive
//zenrpc:404 article not found
//zenrpc:500 internal server error
func (s *BoardService) ArticleComments(ctx context.Context, articleId int) (Comments, error) {
	comments, err := s.manager.ArticleComments(ctx, articleId)
	if err != nil {
		return nil, newError(err)
	}

	return NewComments(comments), nil
}

// AddComment creates a comment on an article.
//
//zenrpc:articleId article numeric ID
//zenrpc:comment author username and body
//zenrpc:return created comment
//zenrpc:400 invalid id, missing username or body
//zenrpc:404 article or user not found
//zenrpc:500 internal server error
func (s *BoardService) AddComment(ctx context.Context, articleId int, comment CommentInput) (*Comment, error) {
	created, err := s.manager.AddComment(ctx, articleId, comment.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	result := NewComment(*created)
	return &result, nil
}

// AdjustVotes adds incVotes (may be negative) to the article votes.
//
//zenrpc:articleId article numeric ID
//zenrpc:incVotes vote delta, integer or numeric string
//zenrpc:return updated article
//zenrpc:400 invalid id or missing incVotes
//zenrpc:404 article not found or votes would drop below zero
//zenrpc:500 internal server error
func (s *BoardService) AdjustVotes(ctx context.Context, articleId int, incVotes *board.VoteDelta) (*Article, error) {
	article, err := s.manager.AdjustVotes(ctx, articleId, board.VoteInput{IncVotes: incVotes})
	if err != nil {
		return nil, newError(err)
	}

	result := NewArticle(*article)
	return &result, nil
}

// DeleteComment removes a comment by its id.
//
//zenrpc:articleId article numeric ID
//zenrpc:commentId comment numeric ID
//zenrpc:return true when the comment was removed
//zenrpc:400 id must be positive
//zenrpc:404 comment not found
//zenrpc:500 internal server error
func (s *BoardService) DeleteComment(ctx context.Context, articleId, commentId int) (bool, error) {
	n, err := s.manager.DeleteComment(ctx, articleId, commentId)
	if err != nil {
		return false, newError(err)
	} else if n == 0 {
		return false, ErrNotFound
	}

	return true, nil
}

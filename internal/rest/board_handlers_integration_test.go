//go:build integration

package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"testing"

	"github.com/daniilsolovey/discussion-board/internal/board"
	"github.com/daniilsolovey/discussion-board/internal/db"
	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
)

var (
	testDB   *pg.DB
	testEcho *echo.Echo
)

func TestMain(m *testing.M) {
	var err error
	testDB, err = db.SetupTestDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to prepare test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	repo := db.New(testDB)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	testEcho = NewBoardHandler(board.NewManager(repo), repo, logger).RegisterRoutes()

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func TestArticles_Integration(t *testing.T) {
	t.Run("AllArticles", func(t *testing.T) {
		rec := doRequest(testEcho, http.MethodGet, "/api/articles", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
		}

		var resp ArticlesResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if len(resp.Articles) != 13 {
			t.Fatalf("expected 13 articles, got %d", len(resp.Articles))
		}
	})

	t.Run("TopicFilter", func(t *testing.T) {
		rec := doRequest(testEcho, http.MethodGet, "/api/articles?topic=cats", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}

		var resp ArticlesResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if len(resp.Articles) != 1 || resp.Articles[0].Topic != "cats" {
			t.Fatalf("expected one cats article, got %+v", resp.Articles)
		}
	})

	t.Run("InvalidSortBy", func(t *testing.T) {
		rec := doRequest(testEcho, http.MethodGet, "/api/articles?sort_by=testing", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
	})
}

func TestArticleByID_Integration(t *testing.T) {
	rec := doRequest(testEcho, http.MethodGet, "/api/articles/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
	}

	var resp ArticleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Article.CommentCount != 11 {
		t.Errorf("expected 11 comments, got %d", resp.Article.CommentCount)
	}

	rec = doRequest(testEcho, http.MethodGet, "/api/articles/9999", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestVotesRoundTrip_Integration(t *testing.T) {
	for _, tc := range []struct {
		body string
		want int
	}{
		{body: `{"inc_votes": 10}`, want: 110},
		{body: `{"inc_votes": -10}`, want: 100},
	} {
		rec := doRequest(testEcho, http.MethodPatch, "/api/articles/1", tc.body)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
		}

		var article Article
		if err := json.Unmarshal(rec.Body.Bytes(), &article); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if article.Votes != tc.want {
			t.Fatalf("expected %d votes, got %d", tc.want, article.Votes)
		}
	}

	rec := doRequest(testEcho, http.MethodPatch, "/api/articles/2", `{"inc_votes": -1}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 below vote floor, got %d", rec.Code)
	}
}

func TestCommentLifecycle_Integration(t *testing.T) {
	rec := doRequest(testEcho, http.MethodPost, "/api/articles/2/comments",
		`{"username": "lurker", "body": "integration comment"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body: %s", rec.Code, rec.Body.String())
	}

	var created CreatedComment
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	target := fmt.Sprintf("/api/articles/2/comments/%d", created.CommentID)

	rec = doRequest(testEcho, http.MethodDelete, target, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}

	rec = doRequest(testEcho, http.MethodDelete, target, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 on repeat delete, got %d", rec.Code)
	}

	rec = doRequest(testEcho, http.MethodPost, "/api/articles/2/comments",
		`{"username": "nobody", "body": "hello"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for unknown user, got %d", rec.Code)
	}
}

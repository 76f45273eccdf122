package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sentinela/gateway/internal/models"
	"github.com/sentinela/gateway/internal/session"
)

func (c *Client) ListUsers(ctx context.Context, s session.Session) ([]models.User, error) {
	out := []models.User{}
	err := c.decode(ctx, request{method: http.MethodGet, path: "/users", token: s.Token}, &out)
	return out, err
}

type createUserBody struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

func (c *Client) CreateUser(ctx context.Context, s session.Session, email string, isAdmin bool) (models.User, error) {
	var u models.User
	err := c.decode(ctx, request{
		method: http.MethodPost,
		path:   "/users",
		token:  s.Token,
		body:   createUserBody{ID: 0, Email: email, IsAdmin: isAdmin},
	}, &u)
	return u, err
}

func (c *Client) DeleteUser(ctx context.Context, s session.Session, id int64) error {
	_, err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/users/" + strconv.FormatInt(id, 10),
		token:  s.Token,
	})
	return err
}

func (c *Client) ListDangerousWords(ctx context.Context, s session.Session) ([]models.DangerousWord, error) {
	out := []models.DangerousWord{}
	err := c.decode(ctx, request{method: http.MethodGet, path: "/dangerous-words", token: s.Token}, &out)
	return out, err
}

// AddDangerousWord registers a word. The backend takes word and category as
// query parameters with an empty body.
func (c *Client) AddDangerousWord(ctx context.Context, s session.Session, word, category string) (models.DangerousWord, error) {
	q := url.Values{}
	q.Set("word", word)
	q.Set("category", category)
	var w models.DangerousWord
	err := c.decode(ctx, request{method: http.MethodPost, path: "/dangerous-words", query: q, token: s.Token}, &w)
	return w, err
}

func (c *Client) DeleteDangerousWord(ctx context.Context, s session.Session, id int64) error {
	_, err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/dangerous-words/" + strconv.FormatInt(id, 10),
		token:  s.Token,
	})
	return err
}

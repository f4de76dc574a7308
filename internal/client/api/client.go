package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tidwall/gjson"

	clientsync "github.com/iudanet/mdkeeper/internal/client/sync"
	apperrors "github.com/iudanet/mdkeeper/internal/errors"
	"github.com/iudanet/mdkeeper/internal/models"
	"github.com/iudanet/mdkeeper/pkg/api"
)

// TokenSource отдает действующий access token для запросов к данным
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// StatusError ответ сервера с кодом не 2xx
type StatusError struct {
	Code       string
	Message    string
	Body       []byte
	StatusCode int
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	tokens     TokenSource
	baseURL    string
}

var _ clientsync.Transport = (*Client)(nil)

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetTokenSource задает источник access token для Push и Pull
func (c *Client) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// GetSalt получает public_salt пользователя
func (c *Client) GetSalt(ctx context.Context, username string) (*api.SaltResponse, error) {
	var resp api.SaltResponse
	path := "/api/v1/auth/salt/" + url.PathEscape(username)
	if err := c.doRequest(ctx, http.MethodGet, path, "", nil, &resp); err != nil {
		return nil, fmt.Errorf("get salt request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Refresh обменивает refresh token на новую пару токенов
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/refresh", refreshToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// Logout отзывает refresh токены пользователя
func (c *Client) Logout(ctx context.Context, accessToken string) error {
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/logout", accessToken, nil, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	return &resp, nil
}

// Push отправляет сущность с ожидаемой версией (optimistic concurrency)
func (c *Client) Push(ctx context.Context, e *models.Entity, expectedVersion int64) (*models.Entity, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	req := api.PushRequest{Entity: api.FromEntity(e), ExpectedVersion: expectedVersion}
	path := fmt.Sprintf("/api/v1/entities/%s/%s", url.PathEscape(string(e.Type)), url.PathEscape(e.ID))

	var resp api.PushResponse
	if err := c.doRequest(ctx, http.MethodPut, path, token, req, &resp); err != nil {
		return nil, fmt.Errorf("push %s %s: %w", e.Type, e.ID, classify(err, expectedVersion))
	}

	return resp.Entity.ToEntity(), nil
}

// Pull получает сущности, измененные после курсора since
func (c *Client) Pull(ctx context.Context, since int64) (*clientsync.PullResult, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	var resp api.PullResponse
	path := "/api/v1/entities?since=" + strconv.FormatInt(since, 10)
	if err := c.doRequest(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("pull since %d: %w", since, classify(err, 0))
	}

	result := &clientsync.PullResult{
		Entities: make([]*models.Entity, 0, len(resp.Entities)),
		Revision: resp.Revision,
	}
	for _, dto := range resp.Entities {
		result.Entities = append(result.Entities, dto.ToEntity())
	}

	return result, nil
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	if c.tokens == nil {
		return "", apperrors.ErrUnauthorized
	}
	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return "", fmt.Errorf("access token: %v: %w", err, apperrors.ErrUnauthorized)
	}
	return token, nil
}

// classify переводит ошибку HTTP в таксономию синхронизации
func classify(err error, expectedVersion int64) error {
	var se *StatusError
	if !errors.As(err, &se) {
		// сетевые ошибки и таймауты
		return fmt.Errorf("%v: %w", err, apperrors.ErrTransient)
	}

	switch {
	case se.StatusCode == http.StatusConflict && se.Code == api.CodeVersionConflict:
		raw := gjson.GetBytes(se.Body, "server_entity")
		if !raw.IsObject() {
			return fmt.Errorf("%v: conflict without server entity: %w", se, apperrors.ErrTransient)
		}
		var dto api.EntityDTO
		if err := json.Unmarshal([]byte(raw.Raw), &dto); err != nil {
			return fmt.Errorf("failed to decode server entity: %v: %w", err, apperrors.ErrTransient)
		}
		return &apperrors.VersionConflictError{Server: *dto.ToEntity(), ExpectedVersion: expectedVersion}
	case se.StatusCode == http.StatusTooManyRequests || se.StatusCode >= 500:
		return fmt.Errorf("%v: %w", se, apperrors.ErrTransient)
	case se.StatusCode == http.StatusUnauthorized || se.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%v: %w", se, apperrors.ErrUnauthorized)
	case se.StatusCode == http.StatusGone:
		return fmt.Errorf("%v: %w", se, apperrors.ErrEntityGone)
	case se.StatusCode == http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%v: %w", se, apperrors.ErrQuotaExceeded)
	default:
		return fmt.Errorf("%v: %w", se, apperrors.ErrRejected)
	}
}

// doRequest выполняет HTTP запрос. token, если не пустой, передается как Bearer.
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		se := &StatusError{StatusCode: resp.StatusCode, Body: respBody}
		if gjson.ValidBytes(respBody) {
			se.Code = gjson.GetBytes(respBody, "code").String()
			se.Message = gjson.GetBytes(respBody, "message").String()
			if se.Message == "" {
				se.Message = gjson.GetBytes(respBody, "error").String()
			}
		}
		return se
	}

	// Декодируем успешный ответ
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

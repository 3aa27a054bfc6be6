package bible

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"versehub/cache"
)

// Client talks to the abibliadigital.com.br API. The upstream limits
// unauthenticated callers, so requests carry a bearer token obtained once
// per day. Tokens and chapters are cached on disk so restarts do not hammer
// the upstream.
type Client struct {
	baseURL  string
	email    string
	password string
	http     *http.Client

	mu    sync.Mutex
	token string
}

const (
	tokenCacheTTL   = 23 * time.Hour
	chapterCacheTTL = 24 * time.Hour
)

type Book struct {
	Abbrev  map[string]string `json:"abbrev"`
	Name    string            `json:"name"`
	Author  string            `json:"author"`
	Group   string            `json:"group"`
	Version string            `json:"version"`
}

type Verse struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

type ChapterInfo struct {
	Number int `json:"number"`
	Verses int `json:"verses"`
}

type Chapter struct {
	Book    Book        `json:"book"`
	Chapter ChapterInfo `json:"chapter"`
	Verses  []Verse     `json:"verses"`
}

func NewClient() *Client {
	baseURL := os.Getenv("bible_api_url")
	if baseURL == "" {
		baseURL = "https://www.abibliadigital.com.br/api"
	}
	return &Client{
		baseURL:  baseURL,
		email:    os.Getenv("bible_api_user"),
		password: os.Getenv("bible_api_password"),
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

// getToken returns a valid API token, reusing the cached one when fresh.
func (c *Client) getToken() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" {
		return c.token, nil
	}

	if cached, found := cache.Read("bible-token", "token", tokenCacheTTL); found {
		c.token = string(cached)
		return c.token, nil
	}

	payload, err := json.Marshal(map[string]string{
		"email":    c.email,
		"password": c.password,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPut, c.baseURL+"/users/token", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("token da API bíblica falhou com status %d: %s", resp.StatusCode, body)
	}

	var tokenResponse struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return "", err
	}
	if tokenResponse.Token == "" {
		return "", fmt.Errorf("resposta de token da API bíblica vazia")
	}

	if err := cache.Write("bible-token", "token", []byte(tokenResponse.Token)); err != nil {
		log.Println("não foi possível cachear o token da API bíblica:", err)
	}
	c.token = tokenResponse.Token
	return c.token, nil
}

func (c *Client) authorizedGet(path string) ([]byte, error) {
	token, err := c.getToken()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API bíblica retornou status %d: %s", resp.StatusCode, body)
	}
	return body, nil
}

// GetChapter fetches every verse of a chapter, serving from the disk cache
// when possible. Chapters never change, the TTL only bounds disk usage.
func (c *Client) GetChapter(version, book string, chapter int) (*Chapter, error) {
	cacheKey := fmt.Sprintf("%s_%s_%d", version, book, chapter)

	raw, found := cache.Read("bible-chapters", cacheKey, chapterCacheTTL)
	if !found {
		var err error
		raw, err = c.authorizedGet(fmt.Sprintf("/verses/%s/%s/%d", version, book, chapter))
		if err != nil {
			return nil, err
		}
		if err := cache.Write("bible-chapters", cacheKey, raw); err != nil {
			log.Println("não foi possível cachear o capítulo:", err)
		}
	}

	var result Chapter
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetVerses filters a chapter down to a single verse or inclusive range.
func (c *Client) GetVerses(version, book string, chapter, verseStart int, verseEnd *int) (*Chapter, error) {
	chapterData, err := c.GetChapter(version, book, chapter)
	if err != nil {
		return nil, err
	}

	filtered := make([]Verse, 0, len(chapterData.Verses))
	for _, verse := range chapterData.Verses {
		if verseEnd != nil {
			if verse.Number >= verseStart && verse.Number <= *verseEnd {
				filtered = append(filtered, verse)
			}
		} else if verse.Number == verseStart {
			filtered = append(filtered, verse)
		}
	}

	return &Chapter{
		Book:    chapterData.Book,
		Chapter: chapterData.Chapter,
		Verses:  filtered,
	}, nil
}

// GetRandomVerse is never cached, a cached random verse is not random.
func (c *Client) GetRandomVerse(version string) (json.RawMessage, error) {
	raw, err := c.authorizedGet(fmt.Sprintf("/verses/%s/random", version))
	if err != nil {
		return nil, err
	}
	return json.RawMessage(raw), nil
}

// ClearTokenCache forces a fresh token on the next request.
func (c *Client) ClearTokenCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	if err := cache.Clear("bible-token", "token"); err != nil {
		log.Println("não foi possível limpar o cache do token:", err)
	}
}

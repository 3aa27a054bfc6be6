package bible

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// chdirTemp isolates the on-disk cache of each test.
func chdirTemp(t *testing.T) {
	t.Helper()
	old, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(old) })
}

type fakeUpstream struct {
	server       *httptest.Server
	tokenCalls   int
	chapterCalls int
	randomCalls  int
}

func newFakeUpstream(t *testing.T) *fakeUpstream {
	upstream := &fakeUpstream{}
	upstream.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut && r.URL.Path == "/users/token":
			upstream.tokenCalls++
			json.NewEncoder(w).Encode(map[string]string{"token": "token-de-teste"})
		case r.URL.Path == "/verses/nvi/jo/3":
			if r.Header.Get("Authorization") != "Bearer token-de-teste" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			upstream.chapterCalls++
			json.NewEncoder(w).Encode(Chapter{
				Book:    Book{Name: "João", Version: "nvi"},
				Chapter: ChapterInfo{Number: 3, Verses: 3},
				Verses: []Verse{
					{Number: 15, Text: "para que todo o que nele crer..."},
					{Number: 16, Text: "Porque Deus tanto amou o mundo..."},
					{Number: 17, Text: "Pois Deus enviou o seu Filho..."},
				},
			})
		case r.URL.Path == "/verses/nvi/random":
			upstream.randomCalls++
			json.NewEncoder(w).Encode(map[string]interface{}{
				"number": 1,
				"text":   "No princípio...",
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(upstream.server.Close)
	return upstream
}

func newTestClient(upstream *fakeUpstream) *Client {
	return &Client{
		baseURL:  upstream.server.URL,
		email:    "teste@example.com",
		password: "senha",
		http:     &http.Client{Timeout: 5 * time.Second},
	}
}

func TestGetChapter_CachesUpstreamResponse(t *testing.T) {
	chdirTemp(t)
	upstream := newFakeUpstream(t)
	client := newTestClient(upstream)

	first, err := client.GetChapter("nvi", "jo", 3)
	assert.NoError(t, err)
	assert.Equal(t, "João", first.Book.Name)
	assert.Len(t, first.Verses, 3)

	second, err := client.GetChapter("nvi", "jo", 3)
	assert.NoError(t, err)
	assert.Equal(t, first.Verses, second.Verses)

	// A segunda leitura sai do disco
	assert.Equal(t, 1, upstream.chapterCalls)
	assert.Equal(t, 1, upstream.tokenCalls)
}

func TestGetChapter_NotFound(t *testing.T) {
	chdirTemp(t)
	upstream := newFakeUpstream(t)
	client := newTestClient(upstream)

	_, err := client.GetChapter("nvi", "xx", 99)
	assert.Error(t, err)
}

func TestGetVerses_SingleVerse(t *testing.T) {
	chdirTemp(t)
	upstream := newFakeUpstream(t)
	client := newTestClient(upstream)

	result, err := client.GetVerses("nvi", "jo", 3, 16, nil)
	assert.NoError(t, err)
	assert.Len(t, result.Verses, 1)
	assert.Equal(t, 16, result.Verses[0].Number)
}

func TestGetVerses_Range(t *testing.T) {
	chdirTemp(t)
	upstream := newFakeUpstream(t)
	client := newTestClient(upstream)

	end := 17
	result, err := client.GetVerses("nvi", "jo", 3, 16, &end)
	assert.NoError(t, err)
	assert.Len(t, result.Verses, 2)
	assert.Equal(t, 16, result.Verses[0].Number)
	assert.Equal(t, 17, result.Verses[1].Number)
}

func TestGetRandomVerse_NeverCached(t *testing.T) {
	chdirTemp(t)
	upstream := newFakeUpstream(t)
	client := newTestClient(upstream)

	_, err := client.GetRandomVerse("nvi")
	assert.NoError(t, err)
	_, err = client.GetRandomVerse("nvi")
	assert.NoError(t, err)

	assert.Equal(t, 2, upstream.randomCalls)
}

func TestClearTokenCache(t *testing.T) {
	chdirTemp(t)
	upstream := newFakeUpstream(t)
	client := newTestClient(upstream)

	_, err := client.GetRandomVerse("nvi")
	assert.NoError(t, err)
	assert.Equal(t, 1, upstream.tokenCalls)

	client.ClearTokenCache()

	_, err = client.GetRandomVerse("nvi")
	assert.NoError(t, err)
	assert.Equal(t, 2, upstream.tokenCalls)
}

func TestParseVerseRange(t *testing.T) {
	start, end, err := parseVerseRange("16")
	assert.NoError(t, err)
	assert.Equal(t, 16, start)
	assert.Nil(t, end)

	start, end, err = parseVerseRange("3-10")
	assert.NoError(t, err)
	assert.Equal(t, 3, start)
	assert.NotNil(t, end)
	assert.Equal(t, 10, *end)

	_, _, err = parseVerseRange("10-3")
	assert.Error(t, err)

	_, _, err = parseVerseRange("abc")
	assert.Error(t, err)

	_, _, err = parseVerseRange("0")
	assert.Error(t, err)

	_, _, err = parseVerseRange("3-")
	assert.Error(t, err)
}

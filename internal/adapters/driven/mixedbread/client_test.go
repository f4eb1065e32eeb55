package mixedbread

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/profscout/internal/core/domain"
	"github.com/custodia-labs/profscout/internal/core/ports/driven"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(Config{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProviderMisconfigured)
}

func TestRetrieveStore(t *testing.T) {
	t.Run("existing store", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/stores/profscout-I42", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id": "store_abc", "name": "profscout-I42", "file_counts": {"total": 1}}`))
		})

		info, err := client.RetrieveStore(context.Background(), "profscout-I42")

		require.NoError(t, err)
		assert.Equal(t, "profscout-I42", info.Name)
		assert.Equal(t, "store_abc", info.ExternalID)
		assert.Equal(t, 1, info.FileCount)
	})

	t.Run("missing store maps to sentinel", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.RetrieveStore(context.Background(), "profscout-I42")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrStoreNotFound)
	})

	t.Run("server failure stays upstream", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.RetrieveStore(context.Background(), "profscout-I42")

		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrStoreNotFound)
		assert.ErrorIs(t, err, domain.ErrUpstream)
	})
}

func TestCreateStore(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/stores", r.URL.Path)

		var req createStoreRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "profscout-I42", req.Name)
		assert.NotEmpty(t, req.Description)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "store_new", "name": "profscout-I42"}`))
	})

	info, err := client.CreateStore(context.Background(), "profscout-I42", "researcher profiles")

	require.NoError(t, err)
	assert.Equal(t, "store_new", info.ExternalID)
}

func TestUploadDocument(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stores/profscout-I42/files", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "profscout-I42-professors", r.FormValue("external_id"))
		assert.Equal(t, "true", r.FormValue("overwrite"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "professors.md", header.Filename)

		w.WriteHeader(http.StatusOK)
	})

	err := client.UploadDocument(context.Background(), "profscout-I42", driven.UploadRequest{
		Filename:   "professors.md",
		ExternalID: "profscout-I42-professors",
		Content:    "# Jane Doe\n",
		Overwrite:  true,
	})

	require.NoError(t, err)
}

func TestSearchAndAnswer(t *testing.T) {
	t.Run("search", func(t *testing.T) {
		var gotPath string
		var gotReq searchRequest
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"data": [
					{"filename": "professors.md", "score": 0.91, "text": "# Jane Doe"},
					{"filename": "professors.md", "score": 0.52, "content": "# John Roe"}
				]
			}`))
		})

		result, err := client.Search(context.Background(), []string{"profscout-I42"}, "robotics", 10, true)

		require.NoError(t, err)
		assert.Equal(t, "/stores/search", gotPath)
		assert.Equal(t, []string{"profscout-I42"}, gotReq.StoreIdentifiers)
		assert.Equal(t, 10, gotReq.TopK)
		assert.True(t, gotReq.SearchOptions.Rerank)

		assert.Empty(t, result.Answer)
		require.Len(t, result.Hits, 2)
		assert.Equal(t, "# Jane Doe", result.Hits[0].Content)
		// Falls back to the content field when text is absent.
		assert.Equal(t, "# John Roe", result.Hits[1].Content)
	})

	t.Run("answer", func(t *testing.T) {
		var gotPath string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"answer": "Jane Doe works on robotics.", "data": []}`))
		})

		result, err := client.Answer(context.Background(), []string{"profscout-I42"}, "who works on robotics?", 10, true)

		require.NoError(t, err)
		assert.Equal(t, "/stores/question-answering", gotPath)
		assert.Equal(t, "Jane Doe works on robotics.", result.Answer)
	})
}

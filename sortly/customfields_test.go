package sortly

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCustomFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/custom_fields", r.URL.Path)
		w.Write([]byte(`{"data":[{"id":1,"name":"Serial Number","type":"text","applies_to":["item"]}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	fields, err := client.ListCustomFields(context.Background())
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "Serial Number", fields[0].Name)
	assert.Equal(t, []string{"item"}, fields[0].AppliesTo)
}

func TestListCustomFieldsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	fields, err := client.ListCustomFields(context.Background())
	require.NoError(t, err, "404 on a collection read is not an error")
	assert.Empty(t, fields)
}

func TestFetchCustomField(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/custom_fields/4", r.URL.Path)
			w.Write([]byte(`{"data":{"id":4,"name":"Warranty","type":"date"}}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)
		field, err := client.FetchCustomField(context.Background(), 4)
		require.NoError(t, err)
		require.NotNil(t, field)
		assert.Equal(t, "Warranty", field.Name)
	})

	t.Run("missing field returns nil without error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)
		field, err := client.FetchCustomField(context.Background(), 99)
		require.NoError(t, err)
		assert.Nil(t, field)
	})

	t.Run("invalid id", func(t *testing.T) {
		client := newTestClient(t, "http://127.0.0.1:1")
		_, err := client.FetchCustomField(context.Background(), -1)
		assert.True(t, IsValidation(err))
	})
}

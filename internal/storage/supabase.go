package storage

import (
	"bytes"
	"fmt"
	"strings"

	storage_go "github.com/supabase-community/storage-go"
)

// Supabase keeps blobs in a Supabase Storage bucket.
type Supabase struct {
	client *storage_go.Client
	bucket string
}

func NewSupabase(supabaseURL, apiKey, bucket string) (*Supabase, error) {
	baseURL := strings.TrimSuffix(supabaseURL, "/")
	client := storage_go.NewClient(baseURL+"/storage/v1", apiKey, nil)

	return &Supabase{
		client: client,
		bucket: bucket,
	}, nil
}

func (s *Supabase) Save(name string, data []byte) error {
	contentType := "application/octet-stream"
	upsert := false
	_, err := s.client.UploadFile(s.bucket, name, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return fmt.Errorf("failed to upload blob %s: %w", name, err)
	}
	return nil
}

func (s *Supabase) Read(name string) ([]byte, error) {
	data, err := s.client.DownloadFile(s.bucket, name)
	if err != nil {
		if strings.Contains(err.Error(), "not_found") || strings.Contains(err.Error(), "404") {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("failed to download blob %s: %w", name, err)
	}
	return data, nil
}

func (s *Supabase) Exists(name string) (bool, error) {
	results, err := s.client.ListFiles(s.bucket, "", storage_go.FileSearchOptions{
		Limit:  1,
		Search: name,
	})
	if err != nil {
		return false, fmt.Errorf("failed to list blobs: %w", err)
	}
	return len(results) > 0, nil
}

func (s *Supabase) Delete(name string) error {
	_, err := s.client.RemoveFile(s.bucket, []string{name})
	if err != nil {
		return fmt.Errorf("failed to delete blob %s: %w", name, err)
	}
	return nil
}

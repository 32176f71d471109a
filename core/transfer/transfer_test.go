package transfer_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gotd/td/tg"
	"github.com/krau/tgxfer/core/transfer"
	"github.com/krau/tgxfer/pkg/tfile"
)

type fakeClient struct {
	data        []byte
	downloadErr error
	uploadErr   error
	hideName    bool

	mu       sync.Mutex
	uploaded map[string][]byte
	progress [][2]int64
}

func (c *fakeClient) Download(ctx context.Context, file tfile.TGFile, w io.WriterAt, progress transfer.ProgressFunc) error {
	half := len(c.data) / 2
	if _, err := w.WriteAt(c.data[:half], 0); err != nil {
		return err
	}
	if progress != nil {
		progress(int64(half), int64(len(c.data)))
	}
	if c.downloadErr != nil {
		return c.downloadErr
	}
	if _, err := w.WriteAt(c.data[half:], int64(half)); err != nil {
		return err
	}
	if progress != nil {
		progress(int64(len(c.data)), int64(len(c.data)))
	}
	return nil
}

func (c *fakeClient) Upload(ctx context.Context, name string, r io.Reader, size int64, progress transfer.ProgressFunc) (tg.InputFileClass, error) {
	if c.uploadErr != nil {
		return nil, c.uploadErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.uploaded == nil {
		c.uploaded = make(map[string][]byte)
	}
	c.uploaded[name] = data
	if progress != nil {
		progress(int64(len(data)), size)
	}
	if c.hideName {
		return &tg.InputFile{ID: 1, Parts: 1}, nil
	}
	return &tg.InputFile{ID: 1, Parts: 1, Name: name}, nil
}

type fakeStatus struct {
	mu    sync.Mutex
	edits []string
}

func (s *fakeStatus) Edit(ctx context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edits = append(s.edits, text)
	return nil
}

func (s *fakeStatus) Delete(ctx context.Context) error {
	return nil
}

type failingStatus struct {
	mu    sync.Mutex
	calls int
}

func (s *failingStatus) Edit(ctx context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return errors.New("message to edit not found")
}

func (s *failingStatus) Delete(ctx context.Context) error {
	return nil
}

type fakePublisher struct {
	docs []transfer.Document
	errs []error
}

func (p *fakePublisher) SendDocument(ctx context.Context, doc transfer.Document) error {
	if len(p.errs) > 0 {
		err := p.errs[0]
		p.errs = p.errs[1:]
		if err != nil {
			return err
		}
	}
	p.docs = append(p.docs, doc)
	return nil
}

func TestResolveDownloadName(t *testing.T) {
	now := time.Date(2024, 3, 5, 7, 8, 9, 0, time.UTC)
	tests := []struct {
		name     string
		file     tfile.TGFile
		explicit string
		userID   int64
		want     string
	}{
		{
			name:     "explicit wins",
			file:     tfile.NewTGFile(nil, 1, "meta.bin"),
			explicit: "chosen.txt",
			want:     "chosen.txt",
		},
		{
			name: "metadata name",
			file: tfile.NewTGFile(nil, 1, "report.pdf"),
			want: "report.pdf",
		},
		{
			name: "metadata name is sanitized",
			file: tfile.NewTGFile(nil, 1, "a:b?.txt"),
			want: "a_b_.txt",
		},
		{
			name: "inferred from mime",
			file: tfile.NewTGFile(nil, 1, "", tfile.WithMIMEType("image/jpeg")),
			want: "image.jpg",
		},
		{
			name:   "generated with user",
			file:   tfile.NewTGFile(nil, 1, ""),
			userID: 42,
			want:   "42_20240305_070809",
		},
		{
			name: "generated without user",
			file: tfile.NewTGFile(nil, 1, ""),
			want: "file_20240305_070809",
		},
		{
			name:     "path components are dropped",
			file:     tfile.NewTGFile(nil, 1, ""),
			explicit: "../../etc/passwd",
			want:     "passwd",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := transfer.ResolveDownloadName(tt.file, tt.explicit, tt.userID, now)
			if got != tt.want {
				t.Errorf("ResolveDownloadName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveUploadName(t *testing.T) {
	now := time.Unix(1700000000, 0)
	tests := []struct {
		name     string
		base     string
		explicit string
		userID   int64
		want     string
	}{
		{"explicit", "a.txt", "b.txt", 7, "b.txt"},
		{"user prefix", "a.txt", "", 7, "7_a.txt"},
		{"user prefix not doubled", "7_a.txt", "", 7, "7_a.txt"},
		{"timestamp", "a.txt", "", 0, "a_1700000000.txt"},
		{"timestamp without ext", "archive", "", 0, "archive_1700000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := transfer.ResolveUploadName(tt.base, tt.explicit, tt.userID, now)
			if got != tt.want {
				t.Errorf("ResolveUploadName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDownload(t *testing.T) {
	dir := t.TempDir()
	data := []byte("hello, telegram")
	client := &fakeClient{data: data}
	file := tfile.NewTGFile(nil, int64(len(data)), "hello.txt")

	res, err := transfer.Download(context.Background(), client, file,
		transfer.WithDir(dir), transfer.WithUserID(9))
	if err != nil {
		t.Fatalf("Download() error = %v", err)
	}
	if want := filepath.Join(dir, "9", "hello.txt"); res.Path != want {
		t.Errorf("Path = %q, want %q", res.Path, want)
	}
	if res.Size != int64(len(data)) {
		t.Errorf("Size = %d, want %d", res.Size, len(data))
	}
	if !strings.HasPrefix(res.MIME, "text/plain") {
		t.Errorf("MIME = %q, want text/plain", res.MIME)
	}
	got, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("content = %q, want %q", got, data)
	}
}

func TestDownloadFailureRemovesFile(t *testing.T) {
	dir := t.TempDir()
	client := &fakeClient{data: []byte("partial content"), downloadErr: errors.New("connection reset")}
	file := tfile.NewTGFile(nil, 15, "broken.bin")

	_, err := transfer.Download(context.Background(), client, file, transfer.WithDir(dir))
	if err == nil {
		t.Fatal("Download() error = nil, want error")
	}
	if !errors.Is(err, client.downloadErr) {
		t.Errorf("Download() error = %v, want wrapping %v", err, client.downloadErr)
	}
	if _, err := os.Stat(filepath.Join(dir, "broken.bin")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("partial file still exists: %v", err)
	}
}

func TestDownloadIsolatesUsers(t *testing.T) {
	dir := t.TempDir()
	client := &fakeClient{data: []byte("same name")}
	file := tfile.NewTGFile(nil, 9, "")

	a, err := transfer.Download(context.Background(), client, file, transfer.WithDir(dir), transfer.WithUserID(1))
	if err != nil {
		t.Fatal(err)
	}
	b, err := transfer.Download(context.Background(), client, file, transfer.WithDir(dir), transfer.WithUserID(2))
	if err != nil {
		t.Fatal(err)
	}
	if a.Path == b.Path {
		t.Errorf("both users downloaded to %q", a.Path)
	}
}

func TestDownloadDoesNotOverwrite(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "dup.txt")
	if err := os.WriteFile(existing, []byte("keep me"), 0o644); err != nil {
		t.Fatal(err)
	}
	client := &fakeClient{data: []byte("new content")}
	res, err := transfer.Download(context.Background(), client, tfile.NewTGFile(nil, 11, "dup.txt"), transfer.WithDir(dir))
	if err != nil {
		t.Fatal(err)
	}
	if res.Path == existing {
		t.Fatal("existing file was reused")
	}
	got, _ := os.ReadFile(existing)
	if string(got) != "keep me" {
		t.Errorf("existing file changed to %q", got)
	}
}

func TestDownloadReportsProgress(t *testing.T) {
	status := &fakeStatus{}
	client := &fakeClient{data: []byte("0123456789")}
	_, err := transfer.Download(context.Background(), client, tfile.NewTGFile(nil, 10, "p.txt"),
		transfer.WithDir(t.TempDir()), transfer.WithStatus(status), transfer.WithInterval(time.Nanosecond))
	if err != nil {
		t.Fatal(err)
	}
	status.mu.Lock()
	defer status.mu.Unlock()
	if len(status.edits) == 0 {
		t.Fatal("no progress reported")
	}
	if !strings.HasPrefix(status.edits[0], "Percent: ") {
		t.Errorf("edit = %q, want progress bar", status.edits[0])
	}
}

func TestDownloadToleratesStatusFailure(t *testing.T) {
	status := &failingStatus{}
	client := &fakeClient{data: []byte("0123456789")}
	res, err := transfer.Download(context.Background(), client, tfile.NewTGFile(nil, 10, "f.txt"),
		transfer.WithDir(t.TempDir()), transfer.WithStatus(status), transfer.WithInterval(time.Nanosecond))
	if err != nil {
		t.Fatalf("Download() error = %v", err)
	}
	if status.calls == 0 {
		t.Fatal("status was never edited")
	}
	got, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "0123456789" {
		t.Errorf("content = %q", got)
	}
}

func TestUploadToleratesStatusFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte("payload"), 0o644); err != nil {
		t.Fatal(err)
	}
	status := &failingStatus{}
	client := &fakeClient{}
	_, err := transfer.Upload(context.Background(), client, path,
		transfer.WithName("f.txt"), transfer.WithStatus(status), transfer.WithInterval(time.Nanosecond))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if status.calls == 0 {
		t.Fatal("status was never edited")
	}
	if string(client.uploaded["f.txt"]) != "payload" {
		t.Errorf("uploaded = %q", client.uploaded["f.txt"])
	}
}

func TestUploadMissingFile(t *testing.T) {
	client := &fakeClient{}
	_, err := transfer.Upload(context.Background(), client, filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, transfer.ErrFileNotFound) {
		t.Fatalf("Upload() error = %v, want ErrFileNotFound", err)
	}
	if len(client.uploaded) != 0 {
		t.Error("client was called for a missing file")
	}
}

func TestUpload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("some notes"), 0o644); err != nil {
		t.Fatal(err)
	}
	client := &fakeClient{}
	file, err := transfer.Upload(context.Background(), client, path, transfer.WithUserID(5))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	in, ok := file.(*tg.InputFile)
	if !ok || in.Name != "5_notes.txt" {
		t.Fatalf("Upload() = %#v, want 5_notes.txt", file)
	}
	if string(client.uploaded["5_notes.txt"]) != "some notes" {
		t.Errorf("uploaded = %q", client.uploaded["5_notes.txt"])
	}
}

func TestUploadAndSend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("document body"), 0o644); err != nil {
		t.Fatal(err)
	}
	pub := &fakePublisher{}
	doc, err := transfer.UploadAndSend(context.Background(), &fakeClient{}, pub, path, "caption", transfer.WithName("renamed.txt"))
	if err != nil {
		t.Fatalf("UploadAndSend() error = %v", err)
	}
	if len(pub.docs) != 1 {
		t.Fatalf("sent %d documents, want 1", len(pub.docs))
	}
	if doc.Name != "renamed.txt" || doc.Caption != "caption" {
		t.Errorf("doc = %+v", doc)
	}
	if !strings.HasPrefix(doc.MIME, "text/plain") {
		t.Errorf("MIME = %q", doc.MIME)
	}
}

func TestUploadAndSendKeepsUploadedName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	if err := os.WriteFile(path, []byte("numbers"), 0o644); err != nil {
		t.Fatal(err)
	}
	client := &fakeClient{hideName: true}
	pub := &fakePublisher{}
	doc, err := transfer.UploadAndSend(context.Background(), client, pub, path, "")
	if err != nil {
		t.Fatalf("UploadAndSend() error = %v", err)
	}
	if len(client.uploaded) != 1 {
		t.Fatalf("uploaded %d files", len(client.uploaded))
	}
	for name := range client.uploaded {
		if doc.Name != name {
			t.Errorf("document name = %q, uploaded as %q", doc.Name, name)
		}
	}
}

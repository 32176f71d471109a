package ioutil_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/krau/tgxfer/common/utils/ioutil"
)

func TestProgressReadSeeker(t *testing.T) {
	data := bytes.Repeat([]byte("a"), 10)
	var last int64
	calls := 0
	pr := ioutil.NewProgressReader(bytes.NewReader(data), int64(len(data)), func(read, total int64) {
		if total != 10 {
			t.Errorf("total = %d, want 10", total)
		}
		last = read
		calls++
	})
	buf := make([]byte, 4)
	for {
		_, err := pr.Read(buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
	}
	if last != 10 || pr.BytesRead() != 10 {
		t.Fatalf("read %d bytes, callback saw %d", pr.BytesRead(), last)
	}
	if calls != 3 {
		t.Fatalf("callback called %d times, want 3", calls)
	}
	if pr.Progress() != 1 {
		t.Fatalf("Progress() = %v", pr.Progress())
	}
	if _, err := pr.Seek(0, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	if pr.BytesRead() != 0 {
		t.Fatalf("BytesRead after rewind = %d", pr.BytesRead())
	}
}

func TestProgressWriterAtConcurrent(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var mu sync.Mutex
	var max int64
	w := ioutil.NewProgressWriterAt(f, 800, func(written, total int64) {
		mu.Lock()
		defer mu.Unlock()
		if written > max {
			max = written
		}
	})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := w.WriteAt(bytes.Repeat([]byte{byte(i)}, 100), int64(i*100)); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()
	if w.BytesWritten() != 800 || max != 800 {
		t.Fatalf("written = %d, max seen = %d", w.BytesWritten(), max)
	}
}

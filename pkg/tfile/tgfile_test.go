package tfile_test

import (
	"errors"
	"testing"

	"github.com/gotd/td/tg"
	"github.com/krau/tgxfer/pkg/tfile"
)

func TestFromMediaDocument(t *testing.T) {
	media := &tg.MessageMediaDocument{
		Document: &tg.Document{
			ID:         1,
			AccessHash: 2,
			Size:       4096,
			MimeType:   "video/mp4",
			Attributes: []tg.DocumentAttributeClass{
				&tg.DocumentAttributeVideo{Duration: 3},
				&tg.DocumentAttributeFilename{FileName: "clip.mp4"},
			},
		},
	}
	file, err := tfile.FromMedia(media)
	if err != nil {
		t.Fatalf("FromMedia: %v", err)
	}
	if file.Name() != "clip.mp4" || file.Size() != 4096 || file.MIMEType() != "video/mp4" {
		t.Fatalf("unexpected file: name=%q size=%d mime=%q", file.Name(), file.Size(), file.MIMEType())
	}
	if _, ok := file.Location().(*tg.InputDocumentFileLocation); !ok {
		t.Fatalf("location type %T", file.Location())
	}
}

func TestFromMediaDocumentWithoutName(t *testing.T) {
	media := &tg.MessageMediaDocument{
		Document: &tg.Document{ID: 1, Size: 10, MimeType: "audio/mpeg"},
	}
	file, err := tfile.FromMedia(media, tfile.WithNameIfEmpty(""))
	if err != nil {
		t.Fatal(err)
	}
	if file.Name() != "" {
		t.Fatalf("Name() = %q, want empty", file.Name())
	}
	file, _ = tfile.FromMedia(media, tfile.WithName("song.mp3"))
	if file.Name() != "song.mp3" {
		t.Fatalf("Name() = %q", file.Name())
	}
}

func TestFromMediaPhotoPicksLargest(t *testing.T) {
	media := &tg.MessageMediaPhoto{
		Photo: &tg.Photo{
			ID: 9,
			Sizes: []tg.PhotoSizeClass{
				&tg.PhotoSize{Type: "s", Size: 100},
				&tg.PhotoSize{Type: "y", Size: 9000},
				&tg.PhotoSizeProgressive{Type: "x", Sizes: []int{10, 500}},
			},
		},
	}
	file, err := tfile.FromMedia(media)
	if err != nil {
		t.Fatal(err)
	}
	loc, ok := file.Location().(*tg.InputPhotoFileLocation)
	if !ok || loc.ThumbSize != "y" || file.Size() != 9000 {
		t.Fatalf("picked %+v size %d", file.Location(), file.Size())
	}
	if file.MIMEType() != "image/jpeg" {
		t.Fatalf("MIMEType() = %q", file.MIMEType())
	}
}

func TestFromMediaErrors(t *testing.T) {
	if _, err := tfile.FromMedia(&tg.MessageMediaDocument{Document: &tg.DocumentEmpty{}}); !errors.Is(err, tfile.ErrEmptyDocument) {
		t.Fatalf("err = %v", err)
	}
	if _, err := tfile.FromMedia(&tg.MessageMediaPhoto{Photo: &tg.Photo{}}); !errors.Is(err, tfile.ErrEmptyPhotoSizes) {
		t.Fatalf("err = %v", err)
	}
	if _, err := tfile.FromMedia(&tg.MessageMediaGeo{}); err == nil {
		t.Fatal("expected error for unsupported media")
	}
}

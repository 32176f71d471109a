package tfile

import (
	"errors"
	"fmt"

	"github.com/gotd/td/tg"
)

// TGFile describes a remote Telegram file. Name is empty when the media
// carries no file name attribute.
type TGFile interface {
	Location() tg.InputFileLocationClass
	Size() int64
	Name() string
	MIMEType() string
}

type tgFile struct {
	location tg.InputFileLocationClass
	size     int64
	name     string
	mimeType string
}

func (f *tgFile) Location() tg.InputFileLocationClass {
	return f.location
}

func (f *tgFile) Size() int64 {
	return f.size
}

func (f *tgFile) Name() string {
	return f.name
}

func (f *tgFile) MIMEType() string {
	return f.mimeType
}

func NewTGFile(location tg.InputFileLocationClass, size int64, name string,
	opts ...TGFileOptions,
) TGFile {
	f := &tgFile{
		location: location,
		size:     size,
		name:     name,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var (
	ErrEmptyDocument   = errors.New("document is empty")
	ErrEmptyPhoto      = errors.New("photo is empty")
	ErrEmptyPhotoSizes = errors.New("photo sizes are empty")
)

func FromMedia(media tg.MessageMediaClass, opts ...TGFileOptions) (TGFile, error) {
	switch m := media.(type) {
	case *tg.MessageMediaDocument:
		document, ok := m.Document.AsNotEmpty()
		if !ok {
			return nil, ErrEmptyDocument
		}
		fileName := ""
		for _, attribute := range document.Attributes {
			if name, ok := attribute.(*tg.DocumentAttributeFilename); ok {
				fileName = name.GetFileName()
				break
			}
		}
		file := &tgFile{
			location: document.AsInputDocumentFileLocation(),
			size:     document.Size,
			name:     fileName,
			mimeType: document.MimeType,
		}
		for _, opt := range opts {
			opt(file)
		}
		return file, nil
	case *tg.MessageMediaPhoto:
		photo, ok := m.Photo.AsNotEmpty()
		if !ok {
			return nil, ErrEmptyPhoto
		}
		location, size, err := largestPhotoSize(photo)
		if err != nil {
			return nil, err
		}
		file := &tgFile{
			location: location,
			size:     size,
			mimeType: "image/jpeg",
		}
		for _, opt := range opts {
			opt(file)
		}
		return file, nil
	}
	return nil, fmt.Errorf("unsupported media type: %T", media)
}

func largestPhotoSize(photo *tg.Photo) (*tg.InputPhotoFileLocation, int64, error) {
	var (
		thumb string
		size  int64
	)
	for _, ps := range photo.Sizes {
		switch s := ps.(type) {
		case *tg.PhotoSize:
			if int64(s.Size) >= size {
				thumb, size = s.Type, int64(s.Size)
			}
		case *tg.PhotoSizeProgressive:
			if len(s.Sizes) > 0 && int64(s.Sizes[len(s.Sizes)-1]) >= size {
				thumb, size = s.Type, int64(s.Sizes[len(s.Sizes)-1])
			}
		}
	}
	if thumb == "" {
		return nil, 0, ErrEmptyPhotoSizes
	}
	return &tg.InputPhotoFileLocation{
		ID:            photo.GetID(),
		AccessHash:    photo.GetAccessHash(),
		FileReference: photo.GetFileReference(),
		ThumbSize:     thumb,
	}, size, nil
}

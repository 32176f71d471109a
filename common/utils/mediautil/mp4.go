package mediautil

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/yapingcat/gomedia/go-mp4"
)

var ErrNoVideoTrack = errors.New("no h264/h265 track found")

// Info holds the video attributes Telegram shows for a document.
type Info struct {
	Duration int // seconds
	Width    int
	Height   int
}

func ReadMP4Info(r io.ReadSeeker) (*Info, error) {
	d := mp4.CreateMp4Demuxer(r)

	tracks, err := d.ReadHead()
	if err != nil {
		return nil, err
	}

	for _, track := range tracks {
		if track.Cid == mp4.MP4_CODEC_H264 || track.Cid == mp4.MP4_CODEC_H265 {
			info := d.GetMp4Info()
			duration := 0
			if info.Timescale > 0 {
				duration = int(info.Duration / info.Timescale)
			}
			return &Info{
				Duration: duration,
				Width:    int(track.Width),
				Height:   int(track.Height),
			}, nil
		}
	}

	return nil, ErrNoVideoTrack
}

// ProbeFile returns video attributes of fp when mimeType denotes an MP4
// video, or nil otherwise.
func ProbeFile(fp, mimeType string) (*Info, error) {
	if !IsMP4(mimeType) {
		return nil, nil
	}
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadMP4Info(f)
}

func IsMP4(mimeType string) bool {
	return strings.HasPrefix(mimeType, "video/mp4") || mimeType == "video/quicktime"
}

package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/gabriel-vasile/mimetype"
	"github.com/krau/tgxfer/client/bot"
	"github.com/krau/tgxfer/client/tgmsg"
	"github.com/krau/tgxfer/common/utils/ioutil"
	"github.com/krau/tgxfer/common/utils/mediautil"
	"github.com/krau/tgxfer/common/utils/tgutil"
	"github.com/krau/tgxfer/config"
	"github.com/krau/tgxfer/core/transfer"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "upload a local file to a telegram chat",
	RunE:  Upload,
}

func Register(root *cobra.Command) {
	uploadCmd.Flags().StringP("file", "f", "", "file path to upload")
	uploadCmd.MarkFlagRequired("file")
	uploadCmd.Flags().String("chat", "", "chat id or username to upload to")
	uploadCmd.MarkFlagRequired("chat")
	uploadCmd.Flags().String("caption", "", "document caption, default is the file name")
	uploadCmd.Flags().Bool("no-progress", false, "disable progress bar")
	root.AddCommand(uploadCmd)
}

func Upload(cmd *cobra.Command, args []string) error {
	fp, err := cmd.Flags().GetString("file")
	if err != nil {
		return err
	}
	chat, err := cmd.Flags().GetString("chat")
	if err != nil {
		return err
	}
	caption, err := cmd.Flags().GetString("caption")
	if err != nil {
		return err
	}
	noProgress, err := cmd.Flags().GetBool("no-progress")
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	logger := log.FromContext(ctx)

	fp = filepath.Clean(fp)
	file, fileInfo, err := openSource(fp)
	if err != nil {
		return err
	}
	defer file.Close()
	fileName := fileInfo.Name()
	fileSize := fileInfo.Size()
	if caption == "" {
		caption = fileName
	}

	ectx, err := bot.Init(ctx)
	if err != nil {
		return err
	}
	chatID, err := tgutil.ParseChatID(ectx, chat)
	if err != nil {
		return fmt.Errorf("failed to resolve chat %s: %w", chat, err)
	}

	var (
		progressUI *UploadProgress
		reader     io.Reader = file
	)
	if !noProgress && fileSize > 0 && term.IsTerminal(int(os.Stdout.Fd())) {
		progressUI = NewUploadProgress(ctx, fileName, fileSize)
		progressUI.Start()
		reader = ioutil.NewProgressReader(file, fileSize, func(read int64, total int64) {
			progressUI.UpdateProgress(float64(read) / float64(total))
		})
	}

	logger.Info("Uploading file...", "file", fp, "chat", chatID)
	client := transfer.NewTDClient(ectx.Raw, config.C().Threads)
	uploaded, err := client.Upload(ctx, fileName, reader, fileSize, nil)
	if err == nil {
		doc := transfer.Document{File: uploaded, Name: fileName, Caption: caption}
		if mt, mtErr := mimetype.DetectFile(fp); mtErr == nil {
			doc.MIME = mt.String()
			doc.Video, _ = mediautil.ProbeFile(fp, doc.MIME)
		}
		err = tgmsg.NewPublisher(ectx, chatID).SendDocument(ctx, doc)
	}
	if err != nil {
		if progressUI != nil {
			progressUI.SetError(err)
			progressUI.Wait()
		}
		return fmt.Errorf("failed to upload file: %w", err)
	}

	if progressUI != nil {
		progressUI.Done()
		progressUI.Wait()
	}
	logger.Info("File uploaded successfully")
	return nil
}

func openSource(fp string) (*os.File, os.FileInfo, error) {
	file, err := os.Open(fp)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %w", transfer.ErrFileNotFound, err)
		}
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, nil, fmt.Errorf("failed to get file info: %w", err)
	}
	if info.IsDir() {
		file.Close()
		return nil, nil, fmt.Errorf("%s is a directory", fp)
	}
	return file, info, nil
}

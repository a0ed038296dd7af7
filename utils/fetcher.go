package utils

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"coursehub/config"

	"github.com/go-resty/resty/v2"
)

// ErrFileTooLarge marks a transfer aborted for exceeding the per-file cap.
var ErrFileTooLarge = errors.New("resource exceeds the per-file size limit")

// NewDownloadClient builds the resty client used for bundle fetches:
// bounded timeout and redirect count, TLS verification left on, an
// identifying user agent, and a dial-time private-address guard.
func NewDownloadClient() *resty.Client {
	cfg := config.AppConfig

	return resty.New().
		SetTransport(SafeTransport()).
		SetTimeout(time.Duration(cfg.DownloadTimeout) * time.Second).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(cfg.MaxRedirects)).
		SetHeader("User-Agent", cfg.DownloadUserAgent).
		SetDoNotParseResponse(true)
}

// FetchResourceToFile streams one remote resource to destPath, enforcing
// maxBytes during the transfer rather than after it. Returns the number of
// bytes written. On any failure the partial file is removed.
func FetchResourceToFile(ctx context.Context, client *resty.Client, rawURL, destPath string, maxBytes int64) (int64, error) {
	resp, err := client.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return 0, err
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() != 200 {
		return 0, fmt.Errorf("unexpected status %d", resp.StatusCode())
	}

	if resp.RawResponse != nil && resp.RawResponse.ContentLength > maxBytes {
		return 0, ErrFileTooLarge
	}

	out, err := os.Create(destPath)
	if err != nil {
		return 0, err
	}

	written, err := io.Copy(out, io.LimitReader(body, maxBytes+1))
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err == nil && written > maxBytes {
		err = ErrFileTooLarge
	}
	if err != nil {
		os.Remove(destPath)
		return 0, err
	}

	return written, nil
}

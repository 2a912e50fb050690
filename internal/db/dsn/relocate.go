package dsn

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// Relocate copies the embedded database file behind fileURL into scratch,
// mirroring its relative path, and returns a file URL pointing at the copy.
// The copy is performed only when the destination is missing or strictly
// older than the source, so warm invocations are a no-op. Any failure logs
// a warning and returns fileURL unchanged; some deployment targets already
// provide a writable path and the original may still work.
//
// Two cold-start requests may race each other here. The copy is idempotent
// (identical content, last writer wins), so no locking is needed.
func Relocate(fileURL, scratch string) string {
	rel := strings.TrimPrefix(fileURL, "file:")

	src, err := filepath.Abs(rel)
	if err != nil {
		log.Warn().Err(err).Str("url", fileURL).Msg("can't resolve embedded database path")
		return fileURL
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		log.Warn().Err(err).Str("path", src).Msg("embedded database file not found, keeping original url")
		return fileURL
	}

	mirror := filepath.Clean(strings.TrimPrefix(filepath.ToSlash(rel), "/"))
	dst := filepath.Join(scratch, filepath.FromSlash(mirror))

	if err = os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		log.Warn().Err(err).Str("path", dst).Msg("can't create scratch directory, keeping original url")
		return fileURL
	}

	dstInfo, err := os.Stat(dst)
	if err == nil && !dstInfo.ModTime().Before(srcInfo.ModTime()) {
		// warm invocation: scratch copy is up to date
		return "file:" + dst
	}

	if err = copyFile(src, dst); err != nil {
		log.Warn().Err(err).Str("src", src).Str("dst", dst).Msg("can't relocate embedded database, keeping original url")
		return fileURL
	}

	log.Info().Str("src", src).Str("dst", dst).Msg("relocated embedded database to scratch directory")

	return "file:" + dst
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}

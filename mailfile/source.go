// Package mailfile reads RFC 5322 messages from .eml files on disk. It
// is the offline stand-in for the Gmail scanner: exported mail can be
// audited without credentials or network access.
package mailfile

import (
	"fmt"
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jhillyerd/enmime"

	"github.com/coreybb/subscan/conversion"
	"github.com/coreybb/subscan/models"
)

// Source reads every .eml file in a directory.
type Source struct {
	dir       string
	converter *conversion.HTMLTextConverter
}

// NewSource creates a Source over the given directory.
func NewSource(dir string) *Source {
	return &Source{
		dir:       dir,
		converter: conversion.NewHTMLTextConverter(),
	}
}

// Messages parses the directory's .eml files into message records. Files
// that fail to parse are logged and skipped; a directory with no readable
// messages yields an empty list, not an error.
func (s *Source) Messages() ([]models.EmailMessage, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read mail directory %s: %w", s.dir, err)
	}

	messages := make([]models.EmailMessage, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".eml") {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		msg, err := s.readFile(path)
		if err != nil {
			log.Printf("WARN (mailfile): skipping %s: %v", path, err)
			continue
		}
		messages = append(messages, msg)
	}

	log.Printf("INFO (mailfile): loaded %d messages from %s", len(messages), s.dir)
	return messages, nil
}

func (s *Source) readFile(path string) (models.EmailMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.EmailMessage{}, err
	}
	defer f.Close()

	env, err := enmime.ReadEnvelope(f)
	if err != nil {
		return models.EmailMessage{}, fmt.Errorf("parse MIME: %w", err)
	}

	msg := models.EmailMessage{
		ID:       messageID(env),
		From:     env.GetHeader("From"),
		To:       env.GetHeader("To"),
		Subject:  env.GetHeader("Subject"),
		BodyText: env.Text,
		BodyHTML: env.HTML,
	}
	if date, err := mail.ParseDate(env.GetHeader("Date")); err == nil {
		msg.Timestamp = date.Unix()
	}
	if msg.BodyText == "" && msg.BodyHTML != "" {
		msg.BodyText = s.converter.ToText(msg.BodyHTML)
	}
	return msg, nil
}

// messageID prefers the Message-ID header; files without one get a
// random ID so grouping and representative selection still work.
func messageID(env *enmime.Envelope) string {
	id := strings.Trim(env.GetHeader("Message-ID"), "<> ")
	if id != "" {
		return id
	}
	return uuid.NewString()
}

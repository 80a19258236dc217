// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/rsd-tui/internal/logger"
	"github.com/atotto/clipboard"
)

// clipboardService guards the single system clipboard handle.
type clipboardService struct {
	mu   sync.Mutex
	held bool

	unsupported func() bool
	write       func(text string) error
	logger      *logger.Logger
}

// NewClipboardService constructs a [ClipboardService] backed by
// github.com/atotto/clipboard (pbcopy, xclip/xsel, wl-copy, Windows API).
func NewClipboardService(logger *logger.Logger) ClipboardService {
	return &clipboardService{
		unsupported: func() bool { return clipboard.Unsupported },
		write:       clipboard.WriteAll,
		logger:      logger,
	}
}

func (c *clipboardService) Acquire() (Clipboard, error) {
	if c.unsupported() {
		return nil, fmt.Errorf("%w: no clipboard utility found (install xclip, xsel or wl-clipboard)", ErrClipboardUnavailable)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.held {
		return nil, fmt.Errorf("%w: handle already in use", ErrClipboardUnavailable)
	}
	c.held = true

	c.logger.Debug().Msg("clipboard acquired")
	return &clipboardHandle{service: c}, nil
}

func (c *clipboardService) release() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.held {
		c.held = false
		c.logger.Debug().Msg("clipboard released")
	}
}

// clipboardHandle is the live [Clipboard] handed out by [clipboardService].
type clipboardHandle struct {
	service  *clipboardService
	released bool
}

func (h *clipboardHandle) WriteText(text string) error {
	if h.released {
		return ErrClipboardReleased
	}

	if err := h.service.write(text); err != nil {
		h.service.logger.Warn().Err(err).Msg("clipboard write failed")
		return fmt.Errorf("%w: %w", ErrClipboardWrite, err)
	}

	return nil
}

func (h *clipboardHandle) Release() {
	if h.released {
		return
	}
	h.released = true
	h.service.release()
}

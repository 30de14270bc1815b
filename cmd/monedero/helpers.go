package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"monedero/internal/common"
	"monedero/internal/config"
	"monedero/internal/ledger"
	"monedero/internal/share"
	"monedero/internal/storage"
)

// openLedger wires up the storage adapter, share facility and ledger, and
// loads the persisted collection. The caller must invoke the returned cleanup
// function when done.
func openLedger(ctx context.Context, opts ...ledger.Option) (*ledger.Ledger, func(), error) {
	dbPath := config.ExpandPath(viper.GetString("storage.path"))

	adapter, err := storage.NewSQLiteAdapter(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open storage: %w", err)
	}
	if err := adapter.Migrate(ctx); err != nil {
		_ = adapter.Close()
		return nil, nil, fmt.Errorf("failed to migrate storage: %w", err)
	}

	sharer := &share.FileSharer{
		Dir:      config.ExpandPath(viper.GetString("share.dir")),
		OpenWith: viper.GetString("share.open_with"),
	}

	opts = append([]ledger.Option{ledger.WithSharer(sharer)}, opts...)
	l := ledger.New(adapter, opts...)
	if err := l.Load(ctx); err != nil {
		_ = adapter.Close()
		if errors.Is(err, ledger.ErrCorruptData) {
			return nil, nil, common.NewUserError(
				fmt.Sprintf("stored transactions in %s are unreadable; restore them from a JSON export", dbPath), err)
		}
		return nil, nil, err
	}

	return l, func() { _ = adapter.Close() }, nil
}

// parseDay parses a yyyy-mm-dd flag value.
func parseDay(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want yyyy-mm-dd", s)
	}
	return t, nil
}

// parseDayFlag parses an optional yyyy-mm-dd flag. endOfDay pushes the bound
// to 23:59:59 so the interval stays inclusive.
func parseDayFlag(s string, endOfDay bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseDay(s)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Second)
	}
	return &t, nil
}

// parseAmount parses a positive decimal amount, accepting both dot and comma
// separators.
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return v, nil
}

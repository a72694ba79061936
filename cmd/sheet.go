package cmd

import (
	"context"

	"github.com/etnz/fondo"
	"github.com/etnz/fondo/sheetstore"
)

// sheet helpers shared by the commands that talk to the Google Sheet.

func appendTradeToSheet(ctx context.Context, t fondo.Trade) error {
	store, err := sheetstore.NewFromEnv(ctx)
	if err != nil {
		return err
	}
	return store.AppendTrade(ctx, t)
}

func appendMovementToSheet(ctx context.Context, m fondo.Movement) error {
	store, err := sheetstore.NewFromEnv(ctx)
	if err != nil {
		return err
	}
	return store.AppendMovement(ctx, m)
}

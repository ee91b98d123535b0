package main

import (
	"go.uber.org/fx"

	"github.com/StGerman/polka-bot/internal/app"
)

func main() {
	fx.New(app.CreateLambdaApp()).Run()
}

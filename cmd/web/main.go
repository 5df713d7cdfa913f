package main

import "autozar_backend/internal/app"

func main() {
	app.Run()
}

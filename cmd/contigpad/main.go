// cmd/contigpad/main.go
package main

import (
	"contigpad/internal/app"
	"contigpad/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}

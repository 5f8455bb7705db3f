// Command linkctl управляет короткими ссылками из консоли: напрямую через
// настроенное хранилище или через gRPC API запущенного сервера.
package main

import "github.com/spf13/cobra"

func main() {
	cobra.CheckErr(NewRootCmd().Execute())
}

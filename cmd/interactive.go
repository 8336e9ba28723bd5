package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kodurunani99/Automated-Code-review/internal/report"
)

const (
	promptText      = "Enter the path to the Python file to review: "
	fileNotFoundMsg = "File not found. Please enter a valid file path."
	genericErrMsg   = "An error occurred: "
)

// runInteractive pede o caminho no stdin e imprime o resultado. Erros viram
// mensagens no stdout; o processo sempre termina com status 0.
func runInteractive(cmd *cobra.Command, opts *options) {
	out := cmd.OutOrStdout()
	fmt.Fprint(out, promptText)

	path, err := readLine(cmd.InOrStdin())
	if err != nil {
		fmt.Fprintln(out, genericErrMsg+err.Error())
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintln(out, fileNotFoundMsg)
			return
		}
		fmt.Fprintln(out, genericErrMsg+err.Error())
		return
	}

	opts.logger.Debugw("arquivo lido", "arquivo", path, "bytes", len(data))

	lines, err := opts.lines(cmd.Context(), opts.newRunner(), string(data))
	if err != nil {
		fmt.Fprintln(out, genericErrMsg+err.Error())
		return
	}
	if err := report.PrintLines(out, lines, report.IsTerminal(out)); err != nil {
		opts.logger.Errorw("erro ao imprimir resultado", "erro", err)
	}
}

// readLine lê uma linha sem o terminador. Entrada vazia sem "\n" é io.EOF.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

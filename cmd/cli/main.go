package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charithe/prefixcalc/pkg/calculator"
	"github.com/charithe/prefixcalc/pkg/logging"
	"github.com/charithe/prefixcalc/pkg/tlsutil"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"gopkg.in/alecthomas/kingpin.v2"
)

// demoExprs are printed by the demo command.
var demoExprs = []string{
	"+ 15 2",
	"(+ 3 (* 3 2))",
	"+ 3 * 3 2",
	"+ * 3 3 2",
}

var (
	app = kingpin.New("Prefix Calculator CLI", "Evaluate prefix notation expressions")

	addr      = app.Flag("addr", "Server address").Default("localhost:8080").Envar("CALC_ADDR").String()
	insecure  = app.Flag("insecure", "Trust unknown CAs").Bool()
	plaintext = app.Flag("plaintext", "Use unencrypted connection").Bool()
	tlsCA     = app.Flag("tls_ca", "Path to TLS CA certificate").Envar("CALC_TLS_CA").ExistingFile()
	local     = app.Flag("local", "Evaluate in-process instead of calling the server").Bool()
	strict    = app.Flag("strict", "Reject malformed expressions").Bool()
	logLevel  = app.Flag("log_level", "Log level").Default("warn").Envar("CALC_LOG_LEVEL").Enum(logging.Levels...)

	evalCmd  = app.Command("eval", "Evaluate a single expression")
	evalExpr = evalCmd.Arg("expr", "Expression (space separated)").Required().Strings()

	batchCmd  = app.Command("batch", "Evaluate one expression per line of stdin")
	streamCmd = app.Command("stream", "Stream stdin lines as fragments of a single expression")
	demoCmd   = app.Command("demo", "Evaluate a few sample expressions in-process")
)

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := logging.Init(logging.Config{Level: *logLevel, Name: "cli"}); err != nil {
		app.Fatalf("Failed to create logger: %v", err)
	}
	defer zap.L().Sync()

	if cmd == demoCmd.FullCommand() {
		doDemo(os.Stdout)
		return
	}

	ev, err := createEvaluator()
	if err != nil {
		zap.S().Fatalw("Failed to connect to server", "addr", *addr, "error", err)
	}
	defer ev.Close()

	ctx := context.Background()
	switch cmd {
	case evalCmd.FullCommand():
		err = doEval(ctx, ev, *evalExpr, os.Stdout)
	case batchCmd.FullCommand():
		err = doBatch(ctx, ev, os.Stdin, os.Stdout)
	case streamCmd.FullCommand():
		err = doStream(ctx, ev, os.Stdin, os.Stdout)
	}

	if err != nil {
		zap.S().Errorw("Evaluation failed", "command", cmd, "error", err)
		ev.Close()
		os.Exit(1)
	}
}

func doEval(ctx context.Context, ev evaluator, args []string, out io.Writer) error {
	result, err := ev.Evaluate(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}

	fmt.Fprintln(out, formatResult(result))
	return nil
}

func doBatch(ctx context.Context, ev evaluator, in io.Reader, out io.Writer) error {
	var exprs []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			exprs = append(exprs, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	results, err := ev.EvaluateBatch(ctx, exprs)
	if err != nil {
		return err
	}

	for i, result := range results {
		fmt.Fprintf(out, "%s: %s\n", exprs[i], formatResult(result))
	}

	return nil
}

func doStream(ctx context.Context, ev evaluator, in io.Reader, out io.Writer) error {
	zap.S().Info("Enter the expression over as many lines as needed. Press Ctrl+D to end")

	fragChan := make(chan string)
	go func() {
		defer close(fragChan)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			// newline keeps tokens on adjacent lines apart
			fragChan <- scanner.Text() + "\n"
		}

		if err := scanner.Err(); err != nil {
			zap.S().Warnw("Failed to read stream", "error", err)
		}
	}()

	result, err := ev.EvaluateStream(ctx, fragChan)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, formatResult(result))
	return nil
}

func doDemo(out io.Writer) {
	for _, expr := range demoExprs {
		fmt.Fprintf(out, "%s: %s\n", expr, formatResult(calculator.Evaluate(expr)))
	}
}

func formatResult(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func createEvaluator() (evaluator, error) {
	if *local {
		return localEvaluator{strict: *strict}, nil
	}

	var dialOpts []grpc.DialOption
	if *plaintext {
		dialOpts = append(dialOpts, grpc.WithInsecure())
	} else {
		tlsConf, err := tlsutil.ClientConfig(*tlsCA, *insecure)
		if err != nil {
			return nil, err
		}
		dialOpts = append(dialOpts, grpc.WithTransportCredentials(credentials.NewTLS(tlsConf)))
	}

	conn, err := grpc.Dial(*addr, dialOpts...)
	if err != nil {
		return nil, err
	}

	var clientOpts []calculator.ClientOption
	if *strict {
		clientOpts = append(clientOpts, calculator.Strict())
	}

	return calculator.NewClient(conn, clientOpts...), nil
}

package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/fatih/color"

	"chain-shielded/crypto/keys"
	"chain-shielded/env"
	"chain-shielded/log"
	"chain-shielded/log/rotation"
	"chain-shielded/metrics"
	"chain-shielded/protocol/asset"
	"chain-shielded/protocol/asset/derive"
)

// config vars
var (
	workers     = env.Int("ASSETID_WORKERS", runtime.GOMAXPROCS(0))
	useColor    = env.Bool("ASSETID_COLOR", true)
	dumpMetrics = env.Bool("ASSETID_METRICS", false)
	logFile     = env.String("ASSETID_LOGFILE", "")
	logSize     = env.Int("ASSETID_LOGSIZE", 5e6)
	logCount    = env.Int("ASSETID_LOGCOUNT", 9)
	timeout     = env.Duration("ASSETID_TIMEOUT", 0)
)

// Without a log file, log output is collected in this buffer
// and displayed only when there's an error.
var logbuf bytes.Buffer

// logCloser is the rotating log file, if any. It is closed on
// every exit path, including fatalln.
var logCloser io.Closer

var (
	bold  = color.New(color.Bold).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
)

type command struct {
	f     func(context.Context, []string)
	usage string
}

var commands = map[string]*command{
	"keygen": {keygen, "[-seed hex]"},
	"new":    {newAsset, "-owner addr -name s [-metadata s]"},
	"decode": {decode, "< hex"},
	"batch":  {batch, "-f manifest.yaml [-o out.bin]"},
	"list":   {list, "-f in.bin"},
}

func main() {
	env.Parse()
	if !*useColor {
		color.NoColor = true
	}

	if *logFile != "" {
		f := rotation.Create(*logFile, *logSize, *logCount)
		logCloser = f
		log.SetOutput(f)
	} else {
		log.SetOutput(&logbuf)
	}
	log.SetPrefix("app", "assetid")

	if len(os.Args) < 2 {
		help(os.Stdout)
		os.Exit(0)
	}
	cmd := commands[os.Args[1]]
	if cmd == nil {
		fmt.Fprintln(os.Stderr, "unknown command:", os.Args[1])
		help(os.Stderr)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = log.AddPrefixkv(ctx, "cmd", os.Args[1])

	cmd.f(ctx, os.Args[2:])

	if *dumpMetrics {
		metrics.Dump(os.Stderr, nil)
	}
	closeLog()
}

func closeLog() {
	if logCloser != nil {
		logCloser.Close()
		logCloser = nil
	}
}

func keygen(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("keygen", flag.ExitOnError)
	seed := fs.String("seed", "", "hex-encoded `seed` for a deterministic key")
	fs.Parse(args)

	var sk keys.SpendingKey
	if *seed != "" {
		b, err := hex.DecodeString(*seed)
		if err != nil {
			fatalln("error: bad seed:", err)
		}
		sk = keys.RootSpendingKey(b)
	} else {
		var err error
		sk, err = keys.NewSpendingKey(nil)
		if err != nil {
			fatalln("error:", err)
		}
	}
	log.Printkv(ctx, "address", sk.PublicAddress())
	fmt.Println("spending key:", sk)
	fmt.Println("public address:", bold(sk.PublicAddress()))
}

func newAsset(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("new", flag.ExitOnError)
	ownerFlag := fs.String("owner", "", "hex-encoded public `address` of the owner")
	name := fs.String("name", "", "asset name")
	metadata := fs.String("metadata", "", "asset metadata")
	fs.Parse(args)

	var owner keys.PublicAddress
	err := owner.UnmarshalText([]byte(*ownerFlag))
	if err != nil {
		fatalln("error: bad owner:", err)
	}
	a, err := asset.New(owner, *name, *metadata)
	if err != nil {
		log.Error(ctx, err)
		fatalln("error:", err)
	}
	log.Printkv(ctx, "asset", a, "nonce", a.Nonce())
	printAsset(os.Stdout, a)
	fmt.Println(hex.EncodeToString(a.Bytes()))
}

func decode(ctx context.Context, args []string) {
	if len(args) != 0 {
		fatalln("error: decode takes no args")
	}
	inp, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatalln("error:", err)
	}
	b, err := hex.DecodeString(strings.TrimSpace(string(inp)))
	if err != nil {
		fatalln("error: bad hex:", err)
	}
	a, err := asset.Decode(b)
	if err != nil {
		log.Error(ctx, err)
		fatalln("error:", err)
	}
	printAsset(os.Stdout, a)
}

func batch(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	manifestFile := fs.String("f", "", "YAML manifest `file`")
	outFile := fs.String("o", "", "write the encoded asset list to `file`")
	fs.Parse(args)

	if *manifestFile == "" {
		fatalln("error: batch needs -f")
	}
	data, err := os.ReadFile(*manifestFile)
	if err != nil {
		fatalln("error:", err)
	}
	reqs, err := parseManifest(data)
	if err != nil {
		fatalln("error:", err)
	}

	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}
	d := &derive.Deriver{Workers: *workers}
	results := d.Derive(ctx, reqs)

	var (
		assets []*asset.Asset
		failed int
	)
	for i, r := range results {
		if r.Err != nil {
			failed++
			fmt.Printf("%s %q: %v\n", red("FAIL"), reqs[i].Name, r.Err)
			continue
		}
		assets = append(assets, r.Asset)
		fmt.Printf("%s %q %s nonce=%d\n", green("ok"), reqs[i].Name, r.Asset.ID(), r.Asset.Nonce())
	}
	if failed > 0 {
		fatalln(fmt.Sprintf("error: %d of %d assets failed", failed, len(reqs)))
	}

	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fatalln("error:", err)
		}
		err = writeListFile(f, assets)
		if err != nil {
			fatalln("error:", err)
		}
		err = f.Close()
		if err != nil {
			fatalln("error:", err)
		}
		log.Printkv(ctx, "wrote", *outFile, "assets", len(assets))
	}
}

func list(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	inFile := fs.String("f", "", "encoded asset list `file`")
	fs.Parse(args)

	f, err := os.Open(*inFile)
	if err != nil {
		fatalln("error:", err)
	}
	defer f.Close()
	assets, err := readListFile(f)
	if err != nil {
		log.Error(ctx, err)
		fatalln("error:", err)
	}
	for _, a := range assets {
		printAsset(os.Stdout, a)
	}
}

func printAsset(w io.Writer, a *asset.Asset) {
	out, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		fatalln("error:", err)
	}
	fmt.Fprintln(w, string(out))
}

func fatalln(v ...interface{}) {
	closeLog()
	io.Copy(os.Stderr, &logbuf)
	fmt.Fprintln(os.Stderr, red(strings.TrimSuffix(fmt.Sprintln(v...), "\n")))
	os.Exit(2)
}

func help(w io.Writer) {
	fmt.Fprintln(w, "usage: assetid command [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	for _, name := range []string{"keygen", "new", "decode", "batch", "list"} {
		fmt.Fprintf(w, "    %s %s\n", name, commands[name].usage)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"snowid.local/internal/app/idgen"
	"snowid.local/internal/platform/config"
)

// mintid 批量发号并打印 <id>\t<shortcode>，用于压测、排查和给脚本喂数据。
// 实例编号和编码方案走环境变量（SNOWFLAKE_INSTANCE_ID / SHORTCODE_CODEC）。
func main() {
	n := flag.Int("n", 1, "number of ids to mint")
	verify := flag.Bool("verify", false, "decode each shortcode and check the round trip")
	flag.Parse()

	cfg := config.Load()

	var h slog.Handler
	if cfg.LogFormat == "text" {
		h = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})
	} else {
		h = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})
	}
	slog.SetDefault(slog.New(h))

	gen, err := idgen.New(cfg.InstanceID)
	if err != nil {
		log.Fatal(err)
	}
	minter := idgen.NewInstrumented(gen)
	slog.Info("minting", "instance_id", gen.InstanceID(), "codec", cfg.Codec, "n", *n)

	ctx := context.Background()
	for i := 0; i < *n; i++ {
		id, err := minter.NextID(ctx)
		if err != nil {
			log.Fatal(err)
		}
		code, err := encode(cfg.Codec, id)
		if err != nil {
			log.Fatal(err)
		}
		if *verify {
			back, err := decode(cfg.Codec, code)
			if err != nil || back != id {
				slog.Error("round trip mismatch", "id", id, "code", code, "err", err)
				os.Exit(1)
			}
		}
		fmt.Printf("%d\t%s\n", id, code)
	}
}

func encode(codec string, id uint64) (string, error) {
	if codec == "sqids" {
		return idgen.SqidsEncode(id)
	}
	return idgen.EncodeBase62(id), nil
}

func decode(codec, code string) (uint64, error) {
	if codec == "sqids" {
		return idgen.SqidsDecode(code)
	}
	return idgen.DecodeBase62(code)
}

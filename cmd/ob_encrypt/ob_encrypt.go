// Command ob_encrypt encrypts a single 16-byte block with AES-256 by driving
// the byte-serial onebox engine end to end, and prints the ciphertext as hex.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/codahale/onebox"
)

func main() {
	log := slog.New(slog.Default().Handler())

	keyHex := flag.String("key", "", "the 32-byte key as hex")
	blockHex := flag.String("block", "", "the 16-byte plaintext block as hex")
	flag.Parse()

	key, err := hex.DecodeString(*keyHex)
	if err != nil || len(key) != onebox.KeySize {
		log.Error("key must be 32 bytes of hex", "err", err)
		os.Exit(1)
	}

	block, err := hex.DecodeString(*blockHex)
	if err != nil || len(block) != onebox.BlockSize {
		log.Error("block must be 16 bytes of hex", "err", err)
		os.Exit(1)
	}

	core := onebox.New()
	for _, b := range key {
		core.LoadKeyByte(b)
	}
	for _, b := range block {
		core.LoadBlockByte(b)
	}

	core.Start()
	steps := 0
	for !core.Done() {
		core.Step()
		steps++
	}

	ciphertext := make([]byte, onebox.BlockSize)
	for i := range ciphertext {
		ciphertext[i] = core.ReadByte()
	}

	log.Info("encrypted", "steps", steps)
	fmt.Printf("%x\n", ciphertext)
}

// Copyright (c) 2024 The ModChain-starkcurve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command starkverify signs or verifies an ECDSA-Stark signature from hex
// arguments on the command line, as a thin operational wrapper around
// starkffi.
package main

import (
	"encoding/hex"
	"flag"
	"log"
	"os"

	"github.com/modchain/starkcurve/starkffi"
)

func main() {
	verifyCmd := flag.NewFlagSet("verify", flag.ExitOnError)
	verifyKey := verifyCmd.String("key", "", "hex-encoded 32-byte stark key x coordinate")
	verifyHash := verifyCmd.String("hash", "", "hex-encoded 32-byte message hash")
	verifyR := verifyCmd.String("r", "", "hex-encoded 32-byte signature r")
	verifyW := verifyCmd.String("w", "", "hex-encoded 32-byte signature w (s^-1 mod n)")

	signCmd := flag.NewFlagSet("sign", flag.ExitOnError)
	signKey := signCmd.String("key", "", "hex-encoded 32-byte private key")
	signHash := signCmd.String("hash", "", "hex-encoded 32-byte message hash")
	signNonce := signCmd.String("k", "", "hex-encoded 32-byte nonce")

	if len(os.Args) < 2 {
		log.Fatal("usage: starkverify <verify|sign> [flags]")
	}

	switch os.Args[1] {
	case "verify":
		verifyCmd.Parse(os.Args[2:])
		key := mustBytes32("key", *verifyKey)
		hash := mustBytes32("hash", *verifyHash)
		r := mustBytes32("r", *verifyR)
		w := mustBytes32("w", *verifyW)
		if starkffi.Verify(key, hash, r, w) {
			log.Print("signature valid")
			return
		}
		log.Fatal("signature invalid")
	case "sign":
		signCmd.Parse(os.Args[2:])
		key := mustBytes32("key", *signKey)
		hash := mustBytes32("hash", *signHash)
		k := mustBytes32("k", *signNonce)
		r, s, ok := starkffi.Sign(key, hash, k)
		if !ok {
			log.Fatal("signing failed: degenerate key or nonce")
		}
		log.Printf("r=%s s=%s", hex.EncodeToString(r[:]), hex.EncodeToString(s[:]))
	default:
		log.Fatalf("unknown subcommand %q", os.Args[1])
	}
}

func mustBytes32(flagName, s string) [32]byte {
	var out [32]byte
	b, err := hex.DecodeString(s)
	if err != nil {
		log.Fatalf("-%s: invalid hex: %v", flagName, err)
	}
	if len(b) != 32 {
		log.Fatalf("-%s: expected 32 bytes, got %d", flagName, len(b))
	}
	copy(out[:], b)
	return out
}

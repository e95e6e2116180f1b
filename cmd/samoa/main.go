package main

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/haikale/schmidt-samoa-go/pkg/samoa"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	app := &cli.App{
		Name:  "samoa",
		Usage: "Schmidt-Samoa key generation and encryption",
		Commands: []*cli.Command{
			keygenCommand(&log),
			encryptCommand(&log),
			decryptCommand(&log),
			encryptTextCommand(&log),
			decryptTextCommand(&log),
			demoCommand(&log),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("samoa failed")
	}
}

func keygenCommand(log *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "keygen",
		Usage: "Generate a keypair and print its components in hex",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "bits",
				Usage:   "Target modulus size in bits",
				Value:   1024,
				EnvVars: []string{"SAMOA_KEY_BITS"},
			},
		},
		Action: func(c *cli.Context) error {
			bits := c.Int("bits")
			log.Info().Int("bits", bits).Msg("generating keypair")

			priv, err := samoa.GenerateKey(rand.Reader, bits)
			if err != nil {
				return err
			}

			log.Info().Int("modulus_bits", priv.N.BitLen()).Msg("keypair ready")
			fmt.Printf("n = %x\n", priv.N)
			fmt.Printf("d = %x\n", priv.D)
			fmt.Printf("p = %x\n", priv.P)
			fmt.Printf("q = %x\n", priv.Q)
			return nil
		},
	}
}

func encryptCommand(log *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "encrypt",
		Usage:     "Encrypt a decimal integer under a public modulus",
		ArgsUsage: "message",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "n", Usage: "Public modulus in hex", Required: true},
		},
		Action: func(c *cli.Context) error {
			pub, err := publicKeyFromHex(c.String("n"))
			if err != nil {
				return err
			}
			m, ok := new(big.Int).SetString(c.Args().First(), 10)
			if !ok {
				return fmt.Errorf("message %q is not a decimal integer", c.Args().First())
			}

			ct, err := samoa.Encrypt(pub, m)
			if err != nil {
				return err
			}
			fmt.Println(ct.String())
			return nil
		},
	}
}

func decryptCommand(log *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "decrypt",
		Usage:     "Decrypt a decimal ciphertext with the private key",
		ArgsUsage: "ciphertext",
		Flags:     privateKeyFlags(),
		Action: func(c *cli.Context) error {
			priv, err := privateKeyFromFlags(c)
			if err != nil {
				return err
			}
			ct, ok := new(big.Int).SetString(c.Args().First(), 10)
			if !ok {
				return fmt.Errorf("ciphertext %q is not a decimal integer", c.Args().First())
			}

			m, err := samoa.Decrypt(priv, ct)
			if err != nil {
				return err
			}
			fmt.Println(m.String())
			return nil
		},
	}
}

func encryptTextCommand(log *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "encrypt-text",
		Usage:     "Encrypt a text of any length, one ciphertext chunk per line",
		ArgsUsage: "text",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "n", Usage: "Public modulus in hex", Required: true},
		},
		Action: func(c *cli.Context) error {
			pub, err := publicKeyFromHex(c.String("n"))
			if err != nil {
				return err
			}

			text := c.Args().First()
			chunks, err := samoa.EncryptLargeString(pub, text)
			if err != nil {
				return err
			}

			log.Info().Int("chunks", len(chunks)).Int("capacity", samoa.ChunkCapacity(pub)).Msg("text encrypted")
			for _, chunk := range chunks {
				fmt.Println(chunk.String())
			}
			return nil
		},
	}
}

func decryptTextCommand(log *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "decrypt-text",
		Usage:     "Decrypt ciphertext chunks (in order) back into text",
		ArgsUsage: "chunk [chunk...]",
		Flags:     privateKeyFlags(),
		Action: func(c *cli.Context) error {
			priv, err := privateKeyFromFlags(c)
			if err != nil {
				return err
			}

			chunks := make([]*big.Int, c.NArg())
			for i := 0; i < c.NArg(); i++ {
				arg := c.Args().Get(i)
				ct, ok := new(big.Int).SetString(arg, 10)
				if !ok {
					return fmt.Errorf("chunk %q is not a decimal integer", arg)
				}
				chunks[i] = ct
			}

			text, err := samoa.DecryptLargeString(priv, chunks)
			if err != nil {
				return err
			}
			fmt.Println(text)
			return nil
		},
	}
}

func demoCommand(log *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "Walk through key generation and a numeric and text round trip",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "bits", Usage: "Demo key size in bits", Value: 64},
		},
		Action: func(c *cli.Context) error {
			bits := c.Int("bits")
			log.Info().Int("bits", bits).Msg("generating demo keypair")

			priv, err := samoa.GenerateKey(rand.Reader, bits)
			if err != nil {
				return err
			}
			pub := priv.Public()
			log.Info().Str("n", pub.N.String()).Str("p", priv.P.String()).Str("q", priv.Q.String()).Msg("keypair")

			m := big.NewInt(12345)
			ct, err := samoa.Encrypt(pub, m)
			if err != nil {
				return err
			}
			back, err := samoa.Decrypt(priv, ct)
			if err != nil {
				return err
			}
			log.Info().Str("message", m.String()).Str("ciphertext", ct.String()).Str("decrypted", back.String()).Msg("numeric round trip")

			text := strings.Repeat("HELLO ", 10)
			chunks, err := samoa.EncryptLargeString(pub, text)
			if err != nil {
				return err
			}
			got, err := samoa.DecryptLargeString(priv, chunks)
			if err != nil {
				return err
			}
			log.Info().Int("chunks", len(chunks)).Bool("match", got == text).Msg("text round trip")
			return nil
		},
	}
}

func privateKeyFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "d", Usage: "Private exponent in hex", Required: true},
		&cli.StringFlag{Name: "p", Usage: "First prime in hex", Required: true},
		&cli.StringFlag{Name: "q", Usage: "Second prime in hex", Required: true},
	}
}

func publicKeyFromHex(nHex string) (*samoa.PublicKey, error) {
	n, ok := new(big.Int).SetString(nHex, 16)
	if !ok {
		return nil, fmt.Errorf("modulus %q is not hex", nHex)
	}
	return &samoa.PublicKey{N: n}, nil
}

func privateKeyFromFlags(c *cli.Context) (*samoa.PrivateKey, error) {
	parse := func(name string) (*big.Int, error) {
		v, ok := new(big.Int).SetString(c.String(name), 16)
		if !ok {
			return nil, fmt.Errorf("flag --%s %q is not hex", name, c.String(name))
		}
		return v, nil
	}

	d, err := parse("d")
	if err != nil {
		return nil, err
	}
	p, err := parse("p")
	if err != nil {
		return nil, err
	}
	q, err := parse("q")
	if err != nil {
		return nil, err
	}

	n := new(big.Int).Mul(p, p)
	n.Mul(n, q)
	return &samoa.PrivateKey{
		PublicKey: samoa.PublicKey{N: n},
		D:         d,
		P:         p,
		Q:         q,
	}, nil
}

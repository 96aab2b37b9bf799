package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/ballotbox/pkg/cryptox"
	"github.com/aussiebroadwan/ballotbox/pkg/jwtx"
)

// InitSigner builds the token signer for the configured algorithm.
//
//   - HS256 signs with BALLOT_TOKEN_SECRET. In dev a random secret is
//     generated when none is set, so tokens do not survive a restart.
//   - EdDSA signs with an Ed25519 key read from SigningKeyFile, which is
//     created with 0600 permissions if missing.
func InitSigner(cfg Config, logger *slog.Logger) (jwtx.Signer, error) {
	switch cfg.TokenAlgorithm {
	case "EdDSA":
		pemKey, err := cryptox.LoadOrGenerateEd25519Key(cfg.SigningKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load signing key: %w", err)
		}
		signer, err := jwtx.NewSignerEdDSA("", pemKey)
		if err != nil {
			return nil, err
		}
		logger.Info("token signer ready", "algorithm", signer.Alg(), "key_file", cfg.SigningKeyFile)
		return signer, nil

	default:
		secret := cfg.TokenSecret
		if secret == "" {
			generated, err := cryptox.GenerateToken(48)
			if err != nil {
				return nil, fmt.Errorf("failed to generate token secret: %w", err)
			}
			secret = generated
			logger.Warn("BALLOT_TOKEN_SECRET not set, using an ephemeral secret; sessions end on restart")
		}
		signer, err := jwtx.NewSignerHS256("", []byte(secret))
		if err != nil {
			return nil, err
		}
		logger.Info("token signer ready", "algorithm", signer.Alg())
		return signer, nil
	}
}

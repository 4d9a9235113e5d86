package appointment

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const referencePrefix = "BI"

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateReferenceNumber gera o número de referência apresentado ao cidadão:
// "BI" + timestamp em base36 + sufixo aleatório, tudo em maiúsculas.
// Unicidade é probabilística; não há round-trip de verificação no banco
// (o índice único em reference_number é o backstop).
func GenerateReferenceNumber() string {
	ts := strconv.FormatInt(time.Now().UnixNano(), 36)
	return strings.ToUpper(referencePrefix + ts + randomBase36(5))
}

func randomBase36(n int) string {
	max := big.NewInt(int64(len(base36Alphabet)))

	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand falhou: degrada para o relógio
			b[i] = base36Alphabet[time.Now().UnixNano()%36]
			continue
		}
		b[i] = base36Alphabet[idx.Int64()]
	}

	return string(b)
}

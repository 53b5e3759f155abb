package password

import (
	"github.com/alexedwards/argon2id"
)

var policy = loadParamsFromEnv()

// Hash returns a PHC string like `$argon2id$v=19$m=65536,t=2,p=1$...`
func Hash(plain string) (string, error) {
	p := argon2id.Params{
		Memory:      policy.Memory,
		Iterations:  policy.Iterations,
		Parallelism: policy.Parallelism,
		SaltLength:  policy.SaltLength,
		KeyLength:   policy.KeyLength,
	}
	return argon2id.CreateHash(plain, &p)
}

// Verify checks a password against a stored PHC hash.
func Verify(plain, phc string) (bool, error) {
	return argon2id.ComparePasswordAndHash(plain, phc)
}

package sdrio

import (
	"bytes"
	"fmt"
	"os"

	"github.com/natefinch/atomic"

	"github.com/katalvlaran/sdrkit/sdr"
)

// SaveFile serializes node to path in the given format. The stream is
// staged in memory and written atomically (temp file + rename), so a crash
// mid-write never leaves a half-written file behind.
func SaveFile(path string, node sdr.SDR, format Format) error {
	buf := &bytes.Buffer{}
	if err := Save(buf, node, format); err != nil {
		return err
	}
	if err := atomic.WriteFile(path, buf); err != nil {
		return fmt.Errorf("sdrio: writing %s: %w", path, err)
	}

	return nil
}

// LoadFile reads one node from path in the given format.
func LoadFile(path string, format Format) (*sdr.Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sdrio: opening %s: %w", path, err)
	}
	defer f.Close()

	return Load(f, format)
}

// Package icon finds the optional window icon shipped next to the
// executable.
package icon

import (
	"bytes"
	"encoding/binary"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileName is looked up in the directory holding the executable.
const FileName = "ascendara.ico"

// maxSize keeps a stray file from being read into memory whole.
const maxSize = 4 << 20

const (
	headerLen = 6
	entryLen  = 16
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Icon is the raw content of the icon file.
type Icon struct {
	Name string
	Data []byte
}

// Load reads FileName beside exePath. Any problem, including a file that is
// not an ICO image, yields false.
func Load(fs afero.Fs, exePath string) (Icon, bool) {
	if exePath == "" {
		return Icon{}, false
	}
	path := filepath.Join(filepath.Dir(exePath), FileName)
	st, err := fs.Stat(path)
	if err != nil || st.IsDir() || st.Size() == 0 || st.Size() > maxSize {
		return Icon{}, false
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil || !validHeader(data) {
		return Icon{}, false
	}
	return Icon{Name: FileName, Data: data}, true
}

func validHeader(b []byte) bool {
	if len(b) < headerLen {
		return false
	}
	reserved := binary.LittleEndian.Uint16(b[0:2])
	typ := binary.LittleEndian.Uint16(b[2:4])
	count := binary.LittleEndian.Uint16(b[4:6])
	return reserved == 0 && typ == 1 && count > 0
}

// PNG returns the largest PNG-compressed image stored in the icon, if any.
// Toolkits that cannot decode ICO can still use it.
func (i Icon) PNG() ([]byte, bool) {
	if !validHeader(i.Data) {
		return nil, false
	}
	count := int(binary.LittleEndian.Uint16(i.Data[4:6]))
	var best []byte
	bestDim := -1
	for n := 0; n < count; n++ {
		off := headerLen + n*entryLen
		if off+entryLen > len(i.Data) {
			break
		}
		e := i.Data[off : off+entryLen]
		// width 0 means 256
		dim := int(e[0])
		if dim == 0 {
			dim = 256
		}
		size := int(binary.LittleEndian.Uint32(e[8:12]))
		start := int(binary.LittleEndian.Uint32(e[12:16]))
		if size <= 0 || start < 0 || start+size > len(i.Data) || start+size < start {
			continue
		}
		img := i.Data[start : start+size]
		if !bytes.HasPrefix(img, pngMagic) {
			continue
		}
		if dim > bestDim {
			best, bestDim = img, dim
		}
	}
	return best, best != nil
}

package render

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// The raster backend draws with the embedded Go fonts so rendering never
// depends on host-installed font files. Brand font families only affect the
// live player, which renders with real web fonts.

type faceKey struct {
	bold bool
	size int
}

var (
	fontOnce    sync.Once
	regularFont *opentype.Font
	boldFont    *opentype.Font

	faceMu    sync.Mutex
	faceCache = map[faceKey]font.Face{}
)

func loadFonts() {
	var err error
	regularFont, err = opentype.Parse(goregular.TTF)
	if err != nil {
		panic(fmt.Sprintf("render: parsing embedded regular font: %v", err))
	}
	boldFont, err = opentype.Parse(gobold.TTF)
	if err != nil {
		panic(fmt.Sprintf("render: parsing embedded bold font: %v", err))
	}
}

// fontFace returns a cached face at the requested pixel size.
func fontFace(bold bool, size float64) font.Face {
	fontOnce.Do(loadFonts)

	key := faceKey{bold: bold, size: int(size)}
	faceMu.Lock()
	defer faceMu.Unlock()

	if f, ok := faceCache[key]; ok {
		return f
	}

	src := regularFont
	if bold {
		src = boldFont
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    float64(key.size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic(fmt.Sprintf("render: building font face: %v", err))
	}
	faceCache[key] = f
	return f
}

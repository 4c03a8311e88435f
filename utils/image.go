package utils

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"
)

// IsAllowedImageExt Check whether an upload has one of the accepted extensions
func IsAllowedImageExt(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}

// DecodeImage Decode an uploaded png or jpeg into an image
func DecodeImage(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", errors.New("cannot decode image: " + err.Error())
	}
	return img, format, nil
}

// ImageToJpgBuffer Convert an image to a jpg buffer to write to output
func ImageToJpgBuffer(image image.Image, options *jpeg.Options) (*[]byte, error) {
	buf := new(bytes.Buffer)

	err := jpeg.Encode(buf, image, options)
	if err != nil {
		return nil, errors.New("jpeg encode error")
	}
	Buffer := buf.Bytes()
	return &Buffer, nil
}

// ImageToPngBuffer Convert an image to a png buffer to write to output
func ImageToPngBuffer(image image.Image) (*[]byte, error) {
	buf := new(bytes.Buffer)

	err := png.Encode(buf, image)
	if err != nil {
		return nil, errors.New("png encode error")
	}
	Buffer := buf.Bytes()
	return &Buffer, nil
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package qr

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// ModuleSize is the edge length, in SVG user units, of one QR module
const ModuleSize = 8

// VotingURL is the payload encoded for a project: <base>/votar/<id>
func VotingURL(baseURL string, projectID int64) string {
	return strings.TrimRight(baseURL, "/") + "/votar/" + strconv.FormatInt(projectID, 10)
}

// SVG encodes content as a QR code with medium error correction and
// renders it as a standalone SVG document, quiet zone included.
func SVG(content string) ([]byte, error) {
	code, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}

	bitmap := code.Bitmap()
	size := len(bitmap) * ModuleSize

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`,
		size, size, len(bitmap), len(bitmap))
	buf.WriteString("<title>")
	if err := xml.EscapeText(&buf, []byte(content)); err != nil {
		return nil, fmt.Errorf("escape qr payload: %w", err)
	}
	buf.WriteString("</title>")
	buf.WriteString(`<rect width="100%" height="100%" fill="#ffffff"/>`)
	buf.WriteString(`<path fill="#000000" d="`)
	for y, row := range bitmap {
		for x, dark := range row {
			if dark {
				fmt.Fprintf(&buf, "M%d %dh1v1h-1z", x, y)
			}
		}
	}
	buf.WriteString(`"/></svg>`)

	return buf.Bytes(), nil
}

// ProjectSVG renders the voting QR code for one project
func ProjectSVG(baseURL string, projectID int64) ([]byte, error) {
	return SVG(VotingURL(baseURL, projectID))
}

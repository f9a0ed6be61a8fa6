// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Semenov

package client

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/dsemenov/go-shield/models"
)

// Upload sends content as a multipart file upload. filename is advisory only;
// the server generates its own storage name and returns it in the response.
// mimeType is the declared content type of the part; the server rejects the
// upload when it contradicts the type sniffed from the bytes. Pass "" to let
// the server rely on sniffing alone.
func (c *Client) Upload(ctx context.Context, filename, mimeType string, content []byte) (models.UploadResponse, error) {
	var uploaded models.UploadResponse

	resp, err := c.request(ctx).
		SetMultipartField("file", filename, mimeType, bytes.NewReader(content)).
		SetResult(&uploaded).
		Post("/upload")
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadResponse{}, err
	}

	return uploaded, nil
}

// Process runs the server's bounded demo operation with the given simulated
// delay in seconds.
func (c *Client) Process(ctx context.Context, delaySeconds float64) (models.ProcessResponse, error) {
	var processed models.ProcessResponse

	req := c.request(ctx).SetResult(&processed)
	if delaySeconds > 0 {
		req.SetQueryParam("delay", strconv.FormatFloat(delaySeconds, 'f', -1, 64))
	}

	resp, err := req.Post("/process")
	if err != nil {
		return models.ProcessResponse{}, fmt.Errorf("process request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProcessResponse{}, err
	}

	return processed, nil
}

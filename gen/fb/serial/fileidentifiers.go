// Copyright 2025 Ducflair
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serial

import (
	fb "github.com/dolthub/flatbuffers/v23/go"
)

// Every root table written by the codec is finished with one of these file
// identifiers. ExportedDataStateFileID is the identifier declared in
// schema/duc.fbs; the others tag standalone entity buffers.
const (
	ExportedDataStateFileID = "DUC_"

	ElementWrapperFileID  = "DELM"
	DucBlockFileID        = "DBLK"
	DucGroupFileID        = "DGRP"
	DucRegionFileID       = "DRGN"
	DucLayerFileID        = "DLYR"
	RendererStateFileID   = "DRST"
	DucGlobalStateFileID  = "DGST"
	DucLocalStateFileID   = "DLST"
	DictionaryFileID      = "DDCT"
)

const (
	fileIDOffset         = fb.SizeUOffsetT
	fileIdentifierLength = 4
)

// GetFileID returns the file identifier of a finished buffer, or the empty
// string if |bs| is too short to carry one.
func GetFileID(bs []byte) string {
	if len(bs) < fileIDOffset+fileIdentifierLength {
		return ""
	}
	return string(bs[fileIDOffset : fileIDOffset+fileIdentifierLength])
}

// FinishMessage finishes |b| with root table |off| and |fileID| and returns
// the finished bytes.
func FinishMessage(b *fb.Builder, off fb.UOffsetT, fileID []byte) []byte {
	b.FinishWithFileIdentifier(off, fileID)
	return b.FinishedBytes()
}

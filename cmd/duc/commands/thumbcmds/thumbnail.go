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


package thumbcmds

import (
	"github.com/ducflair/duc-sub004/cmd/duc/cli"
	"github.com/ducflair/duc-sub004/libraries/utils/argparser"
)

const (
	maxSizeParam = "max-size"
	rawFlag      = "raw"
)

var Commands = cli.NewSubCommandHandler("thumbnail", "Extract, replace or render the document thumbnail.", []cli.Command{
	ExtractCmd{},
	SetCmd{},
	RenderCmd{},
	ClearCmd{},
})

func maxSize(apr *argparser.ArgParseResults, dEnv *cli.Env) int {
	return apr.GetIntOrDefault(maxSizeParam, dEnv.Config.Thumbnail.MaxSize)
}

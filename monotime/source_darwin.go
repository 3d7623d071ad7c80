// Copyright 2025 go-highway Authors
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

//go:build cgo && darwin

package monotime

/*
#include <mach/mach_time.h>
*/
import "C"
import "fmt"

type machSource struct{}

// PlatformSource returns the mach_absolute_time tick counter.
func PlatformSource() Source {
	return machSource{}
}

func (machSource) Name() string { return "mach_absolute_time" }

func (machSource) Timebase() (Timebase, error) {
	var info C.mach_timebase_info_data_t
	if kr := C.mach_timebase_info(&info); kr != 0 {
		return Timebase{}, fmt.Errorf("mach_timebase_info: kern_return_t %d", int(kr))
	}
	return Timebase{Numer: uint32(info.numer), Denom: uint32(info.denom)}, nil
}

func (machSource) Ticks() (uint64, error) {
	return uint64(C.mach_absolute_time()), nil
}

//
// Tencent is pleased to support the open source community by making trpc-msgsplit-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-msgsplit-go is licensed under the Apache License Version 2.0.
//
//

package bunch

import "errors"

var (
	// ErrNoSplitPoint reports that an oversized section had to be split
	// but no character within the allowed window satisfied the split
	// predicate.
	ErrNoSplitPoint = errors.New("no split point found within the message limit")
)

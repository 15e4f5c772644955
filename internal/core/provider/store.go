// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package provider

import "context"

type Repository interface {
	ListProviders(ctx context.Context) ([]Provider, error)
}

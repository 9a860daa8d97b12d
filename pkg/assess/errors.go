package assess

import "errors"

var ErrUnknownPlanner = errors.New("unknown planner")

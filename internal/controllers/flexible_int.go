package controllers

import (
    "bytes"
    "encoding/json"
    "fmt"
    "strconv"
    "strings"
)

// FlexibleInt accepts a JSON number or a numeric string. Admin panels built
// on form inputs tend to send "30000" where the API wants 30000.
type FlexibleInt int

func (fi *FlexibleInt) UnmarshalJSON(data []byte) error {
    if fi == nil {
        return fmt.Errorf("FlexibleInt: nil receiver")
    }
    trimmed := bytes.TrimSpace(data)
    if bytes.Equal(trimmed, []byte("null")) {
        return nil
    }

    var n int
    if err := json.Unmarshal(trimmed, &n); err == nil {
        *fi = FlexibleInt(n)
        return nil
    }

    var s string
    if err := json.Unmarshal(trimmed, &s); err == nil {
        n, err := strconv.Atoi(strings.TrimSpace(s))
        if err != nil {
            return fmt.Errorf("FlexibleInt: invalid numeric string %q", s)
        }
        *fi = FlexibleInt(n)
        return nil
    }

    return fmt.Errorf("FlexibleInt: expected number or numeric string, got %s", string(data))
}

func (fi FlexibleInt) Int() int {
    return int(fi)
}

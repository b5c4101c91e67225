// Command client is a small command-line client for the payment service.
//
// Usage:
//
//	client [-a address] [-t timeout] <command> [args]
//
// Commands:
//
//	version
//	users [pageNumber] [pageSize]
//	payments [pageNumber] [pageSize]
//	phone <phoneNumber>
//	signup <fullName> <phoneNumber> <tariff>
//	pay <fullName> <phoneNumber> <tariff> <receiptFile>
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/MKhiriev/go-payment-system/internal/adapter"
	"github.com/MKhiriev/go-payment-system/internal/logger"
	"github.com/MKhiriev/go-payment-system/models"
)

var errUsage = errors.New("usage: client [-a address] [-t timeout] version|users|payments|phone|signup|pay [args]")

func main() {
	log := logger.NewLogger("payment-client")

	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	address := fs.String("a", "localhost:8080", "payment service address")
	timeout := fs.Duration("t", 30*time.Second, "request timeout")
	logLevel := fs.String("l", "warn", "log level")
	_ = fs.Parse(os.Args[1:])

	if err := log.SetLevel(*logLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	api, err := adapter.NewHTTPServerAdapter(adapter.Config{HTTPAddress: *address, RequestTimeout: *timeout}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}

	result, err := run(context.Background(), api, fs.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err = printJSON(os.Stdout, result); err != nil {
		log.Fatal().Err(err).Msg("error printing result")
	}
}

func run(ctx context.Context, api adapter.ServerAdapter, args []string) (any, error) {
	if len(args) == 0 {
		return nil, errUsage
	}

	command, args := args[0], args[1:]
	switch command {
	case "version":
		return api.Version(ctx)
	case "users":
		page, err := pageFromArgs(args)
		if err != nil {
			return nil, err
		}
		return api.ListUsers(ctx, page)
	case "payments":
		page, err := pageFromArgs(args)
		if err != nil {
			return nil, err
		}
		return api.ListPayments(ctx, page)
	case "phone":
		if len(args) != 1 {
			return nil, errUsage
		}
		return api.ListPaymentsByPhone(ctx, args[0])
	case "signup":
		if len(args) != 3 {
			return nil, errUsage
		}
		return api.SignUp(ctx, models.SignUpRequest{FullName: args[0], PhoneNumber: args[1], Tariff: args[2]})
	case "pay":
		if len(args) != 4 {
			return nil, errUsage
		}
		return pay(ctx, api, args)
	default:
		return nil, fmt.Errorf("unknown command %q: %w", command, errUsage)
	}
}

func pay(ctx context.Context, api adapter.ServerAdapter, args []string) (models.PaymentResponse, error) {
	file, err := os.Open(args[3])
	if err != nil {
		return models.PaymentResponse{}, fmt.Errorf("open receipt: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return models.PaymentResponse{}, fmt.Errorf("stat receipt: %w", err)
	}

	return api.Pay(ctx, models.PayRequest{
		FullName:    args[0],
		PhoneNumber: args[1],
		Tariff:      args[2],
		CheckFile: &models.Receipt{
			FileName:    filepath.Base(args[3]),
			ContentType: mime.TypeByExtension(filepath.Ext(args[3])),
			Size:        info.Size(),
			Content:     file,
		},
	})
}

func pageFromArgs(args []string) (models.PageRequest, error) {
	var page models.PageRequest
	if len(args) > 2 {
		return page, errUsage
	}

	values := []*int{&page.PageNumber, &page.PageSize}
	for i, arg := range args {
		value, err := strconv.Atoi(arg)
		if err != nil {
			return page, fmt.Errorf("invalid page argument %q: %w", arg, err)
		}
		*values[i] = value
	}

	return page, nil
}

func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// marketctl drives one shopper session of the local commerce state
// engine from the terminal: cart, favorites and orders against a
// configured persistence backend.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/pasarumkm/umkm-market/internal/cart"
	"github.com/pasarumkm/umkm-market/internal/catalog"
	"github.com/pasarumkm/umkm-market/internal/config"
	"github.com/pasarumkm/umkm-market/internal/kvstore"
	"github.com/pasarumkm/umkm-market/internal/orders"
	"github.com/pasarumkm/umkm-market/internal/session"
)

const usage = `marketctl <command> [args]

  catalog                          list sample products
  cart add <productID> [qty] [-notes s]
  cart rm <productID>
  cart qty <productID> <n>
  cart clear
  cart show
  fav add <productID> | fav rm <productID> | fav show
  order create <storeID> [-pickup RFC3339]
  order list | order show <orderID>
  order status <orderID> <pending|confirmed|ready|completed|cancelled>
  order proof <orderID> <ref>
`

func main() {
	_ = godotenv.Load()
	log.SetFlags(0)

	cfg := config.Load()
	ctx := context.Background()

	kv, closeFn, err := openBackend(ctx, cfg)
	if err != nil {
		log.Fatalf("backend %s: %v", cfg.Backend, err)
	}
	defer closeFn()

	owner := cfg.OwnerID
	if owner == "" {
		owner, err = deviceOwner(cfg.StateDir)
		if err != nil {
			log.Fatalf("owner id: %v", err)
		}
	}

	sess, err := session.Open(ctx, kv, owner, orders.Options{
		ValidateTransitions: cfg.StrictStatus,
		ProofUpgradeOnly:    cfg.ProofUpgradeOnly,
	})
	if err != nil {
		log.Fatalf("open session: %v", err)
	}

	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(2)
	}

	if err := run(ctx, sess, os.Args[1], os.Args[2:]); err != nil {
		log.Fatal(err)
	}
}

func openBackend(ctx context.Context, cfg config.Config) (kvstore.Store, func(), error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return kvstore.NewMemory(), func() {}, nil
	case config.BackendFile:
		f, err := kvstore.NewFile(cfg.StateDir)
		return f, func() {}, err
	case config.BackendRedis:
		r := kvstore.NewRedis(cfg.RedisAddr)
		return r, func() { _ = r.Close() }, nil
	case config.BackendPostgres:
		p, err := kvstore.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// deviceOwner pins a generated shopper id to the state dir so repeated
// runs on the same machine see the same containers.
func deviceOwner(stateDir string) (string, error) {
	path := filepath.Join(stateDir, "owner.id")
	if b, err := os.ReadFile(path); err == nil && len(b) > 0 {
		return strings.TrimSpace(string(b)), nil
	}
	id := uuid.NewString()
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(id+"\n"), 0o644); err != nil {
		return "", err
	}
	return id, nil
}

func run(ctx context.Context, sess *session.Session, cmd string, args []string) error {
	switch cmd {
	case "catalog":
		for _, p := range catalog.Sample() {
			note := ""
			if p.Category.Restricted() {
				note = "  (pesan langsung, tidak bisa masuk keranjang)"
			}
			fmt.Printf("%-6s %-24s %-10s Rp %d  %s%s\n", p.ID, p.Name, p.Category, p.Price, p.StoreName, note)
		}
		return nil
	case "cart":
		return runCart(ctx, sess, args)
	case "fav":
		return runFav(ctx, sess, args)
	case "order":
		return runOrder(ctx, sess, args)
	default:
		fmt.Print(usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func runCart(ctx context.Context, sess *session.Session, args []string) error {
	if len(args) == 0 {
		return errors.New("cart: missing subcommand")
	}
	switch args[0] {
	case "add":
		fs := flag.NewFlagSet("cart add", flag.ExitOnError)
		notes := fs.String("notes", "", "catatan untuk penjual")
		id, qty, err := splitQty(args[1:], fs)
		if err != nil {
			return err
		}
		p, ok := catalog.Find(id)
		if !ok {
			return fmt.Errorf("produk %s tidak ditemukan", id)
		}
		if err := sess.Cart.Add(ctx, p, qty, *notes); err != nil {
			if errors.Is(err, cart.ErrRestrictedCategory) {
				fmt.Println("Produk makanan dan minuman tidak bisa dipesan online. Silakan pesan langsung via WhatsApp atau datang ke toko.")
				return nil
			}
			return err
		}
		fmt.Printf("ditambahkan: %s x%d\n", p.Name, qty)
		return nil
	case "rm":
		if len(args) < 2 {
			return errors.New("cart rm: missing product id")
		}
		return sess.Cart.Remove(ctx, args[1])
	case "qty":
		if len(args) < 3 {
			return errors.New("cart qty: need product id and quantity")
		}
		n, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("cart qty: %w", err)
		}
		return sess.Cart.SetQuantity(ctx, args[1], n)
	case "clear":
		return sess.Cart.Clear(ctx)
	case "show":
		lines := sess.Cart.Lines()
		if len(lines) == 0 {
			fmt.Println("keranjang kosong")
			return nil
		}
		for _, l := range lines {
			fmt.Printf("%-6s %-24s x%-3d Rp %d", l.Product.ID, l.Product.Name, l.Quantity, l.Product.Price*int64(l.Quantity))
			if l.Notes != "" {
				fmt.Printf("  catatan: %s", l.Notes)
			}
			fmt.Println()
		}
		fmt.Printf("total %d item, Rp %d\n", sess.Cart.ItemCount(), sess.Cart.Total())
		return nil
	default:
		return fmt.Errorf("cart: unknown subcommand %q", args[0])
	}
}

// splitQty parses "<productID> [qty] [-flags]" for cart add.
func splitQty(args []string, fs *flag.FlagSet) (productID string, qty int, err error) {
	if len(args) == 0 {
		return "", 0, errors.New("cart add: missing product id")
	}
	productID = args[0]
	qty = 1
	rest := args[1:]
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
		qty, err = strconv.Atoi(rest[0])
		if err != nil {
			return "", 0, fmt.Errorf("cart add: bad quantity: %w", err)
		}
		rest = rest[1:]
	}
	if err := fs.Parse(rest); err != nil {
		return "", 0, err
	}
	return productID, qty, nil
}

func runFav(ctx context.Context, sess *session.Session, args []string) error {
	if len(args) == 0 {
		return errors.New("fav: missing subcommand")
	}
	switch args[0] {
	case "add":
		if len(args) < 2 {
			return errors.New("fav add: missing product id")
		}
		p, ok := catalog.Find(args[1])
		if !ok {
			return fmt.Errorf("produk %s tidak ditemukan", args[1])
		}
		return sess.Favorites.Add(ctx, p)
	case "rm":
		if len(args) < 2 {
			return errors.New("fav rm: missing product id")
		}
		return sess.Favorites.Remove(ctx, args[1])
	case "show":
		for _, p := range sess.Favorites.Products() {
			fmt.Printf("%-6s %-24s Rp %d  %s\n", p.ID, p.Name, p.Price, p.StoreName)
		}
		return nil
	default:
		return fmt.Errorf("fav: unknown subcommand %q", args[0])
	}
}

func runOrder(ctx context.Context, sess *session.Session, args []string) error {
	if len(args) == 0 {
		return errors.New("order: missing subcommand")
	}
	switch args[0] {
	case "create":
		fs := flag.NewFlagSet("order create", flag.ExitOnError)
		pickup := fs.String("pickup", "", "waktu pengambilan, RFC3339")
		if len(args) < 2 {
			return errors.New("order create: missing store id")
		}
		storeID := args[1]
		if err := fs.Parse(args[2:]); err != nil {
			return err
		}

		var pickupTime *time.Time
		if *pickup != "" {
			t, err := time.Parse(time.RFC3339, *pickup)
			if err != nil {
				return fmt.Errorf("order create: bad pickup time: %w", err)
			}
			pickupTime = &t
		}

		storeName := storeID
		for _, p := range catalog.Sample() {
			if p.StoreID == storeID {
				storeName = p.StoreName
				break
			}
		}

		id, err := sess.Checkout(ctx, storeID, storeName, pickupTime)
		if err != nil {
			return err
		}
		if err := sess.Cart.Clear(ctx); err != nil {
			return err
		}
		fmt.Printf("pesanan dibuat: %s\n", id)
		return nil
	case "list":
		for _, o := range sess.Orders.Orders() {
			fmt.Printf("%-20s %-12s Rp %-10d %s\n", o.ID, o.Status, o.TotalAmount, o.StoreName)
		}
		return nil
	case "show":
		if len(args) < 2 {
			return errors.New("order show: missing order id")
		}
		o, ok := sess.Orders.Get(args[1])
		if !ok {
			return fmt.Errorf("pesanan %s tidak ditemukan", args[1])
		}
		printOrder(o)
		return nil
	case "status":
		if len(args) < 3 {
			return errors.New("order status: need order id and status")
		}
		next := orders.Status(args[2])
		if !next.Valid() {
			return fmt.Errorf("status %q tidak dikenal", args[2])
		}
		changed, err := sess.Orders.UpdateStatus(ctx, args[1], next)
		if err != nil {
			return err
		}
		if !changed {
			fmt.Printf("pesanan %s tidak ditemukan\n", args[1])
		}
		return nil
	case "proof":
		if len(args) < 3 {
			return errors.New("order proof: need order id and proof ref")
		}
		changed, err := sess.Orders.UploadPaymentProof(ctx, args[1], args[2])
		if err != nil {
			return err
		}
		if !changed {
			fmt.Printf("pesanan %s tidak ditemukan\n", args[1])
		}
		return nil
	default:
		return fmt.Errorf("order: unknown subcommand %q", args[0])
	}
}

func printOrder(o orders.Order) {
	fmt.Printf("%s  %s  (%s)\n", o.ID, o.StoreName, o.Status)
	fmt.Printf("dibuat %s\n", o.CreatedAt.Format("02 Jan 2006 15:04"))
	for _, l := range o.Items {
		fmt.Printf("  %-24s x%-3d Rp %d\n", l.Product.Name, l.Quantity, l.Product.Price*int64(l.Quantity))
	}
	fmt.Printf("total Rp %d\n", o.TotalAmount)
	if o.PaymentProof != "" {
		fmt.Printf("bukti bayar: %s\n", o.PaymentProof)
	}
	if o.PickupTime != nil {
		fmt.Printf("waktu ambil: %s\n", o.PickupTime.Format("02 Jan 2006 15:04"))
		if orders.PickupTimeReached(o.PickupTime) {
			fmt.Println(orders.MsgPickupArrived)
		} else {
			fmt.Printf("belum bisa diambil, %s\n", orders.TimeUntilPickup(o.PickupTime))
		}
	}
}
